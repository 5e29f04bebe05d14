// Package goframe provides a float64 table engine with missing-value aware
// fill, shift and percent change.
//
// # Features
//
//   - Tables with integer, time or string row labels and NaN as the missing marker
//   - Forward and backward fill with an optional limit on consecutive fills
//   - Shifting by a period count along rows or columns
//   - Shifting rows by a frequency offset such as 5 business days
//   - Percent change by periods or by frequency, with identical results when
//     the frequency spans the same number of index steps
//
// # Quick Start
//
//	idx := frame.DateRange(start, len(a), offset.BusinessDays(1))
//	t, _ := frame.New(idx, []string{"A", "B"}, [][]float64{a, b})
//	chg, _ := frame.PctChange(t)                       // pad, then one period
//	weekly, _ := frame.PctChange(t, frame.WithFreq("5B"))
//
// # Packages
//
//   - frame: the Table type and the fill, shift and percent change engine
//   - offset: frequency offsets and business-day arithmetic
//   - timeseries: a single-column Series over frame
//   - frame/frametest: table assertions for tests
//
// The goframe command exposes the engine over CSV files.
package goframe
