// Package timeseries provides the Series type, a labelled run of float64
// values backed by a one-column frame.Table.
//
// # Creating a Series
//
//	s := timeseries.New([]float64{100, 102, math.NaN(), 103})
//	daily := timeseries.NewBusinessDaily(start, values)
//
// # Transformations
//
// Every transformation returns a new Series:
//
//	chg, err := s.PctChange()                                  // pad, then one period
//	chg, err := daily.PctChange(frame.WithFreq("5B"))          // one business week
//	filled, err := s.Fill(frame.FillBackfill, 1)
//	lagged, err := s.Shift(1)
//
// # Loading from CSV
//
//	s, err := timeseries.LoadCSVColumn("prices.csv", "close")
package timeseries
