// Package frame provides a float64 table with missing-value aware fill,
// shift and percent change operations.
//
// # Tables
//
// A Table holds equally long float64 columns that share a row Index. Missing
// cells hold NaN; test them with IsMissing, never with ==.
//
//	idx := frame.DateRange(start, 30, offset.BusinessDays(1))
//	t, err := frame.New(idx, []string{"A", "B"}, [][]float64{a, b})
//
// Tables are immutable. Every operation returns a new Table.
//
// # Fill and shift
//
// Fill propagates known values into missing runs along an axis:
//
//	filled, err := frame.Fill(t, frame.FillPad, 0, frame.RowAxis)
//	limited, err := frame.Fill(t, frame.FillBackfill, 1, frame.RowAxis)
//
// Shift moves values by a period count, along rows or columns. ShiftFreq
// moves rows by a frequency offset and realigns them to the original index:
//
//	lagged, err := frame.Shift(t, 1, frame.RowAxis)
//	weekAgo, err := frame.ShiftFreq(t, offset.MustParse("5B"), frame.RowAxis)
//
// # Percent change
//
// PctChange composes fill, shift and filled/shifted - 1:
//
//	chg, err := frame.PctChange(t)
//	chg, err := frame.PctChange(t, frame.WithPeriods(5), frame.WithFillMethod(frame.FillNone))
//	chg, err := frame.PctChange(t, frame.WithFreq("5B"))
//
// On a business-day index the last two calls agree apart from the fill
// method.
//
// # Concurrency
//
// Lanes (columns for RowAxis, rows for ColumnAxis) are independent. Tables
// with at least Options.ParallelThreshold cells are processed with up to
// Options.Workers goroutines; see Configure.
package frame
