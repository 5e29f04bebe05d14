// Package timeseries provides a single-column view over frame tables.
package timeseries

import (
	"errors"
	"fmt"
	"time"

	"github.com/sartorproj/goframe/frame"
	"github.com/sartorproj/goframe/offset"
)

// Series represents a labelled sequence of values.
type Series struct {
	Index  *frame.Index
	Values []float64
	Name   string
}

// New creates a series from values labelled 0..n-1.
func New(values []float64) *Series {
	return &Series{
		Index:  frame.RangeIndex(len(values)),
		Values: values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Index:  frame.NewTimeIndex(timestamps),
		Values: values,
	}, nil
}

// NewBusinessDaily creates a series labelled with consecutive business days
// starting at start.
func NewBusinessDaily(start time.Time, values []float64) *Series {
	return &Series{
		Index:  frame.DateRange(start, len(values), offset.BusinessDays(1)),
		Values: values,
	}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	return &Series{
		Index:  s.Index,
		Values: values,
		Name:   s.Name,
	}
}

func (s *Series) columnName() string {
	if s.Name == "" {
		return "0"
	}
	return s.Name
}

// Frame returns the series as a one-column table.
func (s *Series) Frame() (*frame.Table, error) {
	index := s.Index
	if index == nil {
		index = frame.RangeIndex(len(s.Values))
	}
	return frame.New(index, []string{s.columnName()}, [][]float64{s.Values})
}

// FromFrame extracts column c of t as a series.
func FromFrame(t *frame.Table, c int) (*Series, error) {
	if c < 0 || c >= t.NumCols() {
		return nil, fmt.Errorf("column %d out of range [0, %d)", c, t.NumCols())
	}
	return &Series{
		Index:  t.Index(),
		Values: t.ColumnAt(c),
		Name:   t.Columns()[c],
	}, nil
}

// apply runs a table operation on the series and unwraps the result.
func (s *Series) apply(op func(*frame.Table) (*frame.Table, error), suffix string) (*Series, error) {
	t, err := s.Frame()
	if err != nil {
		return nil, err
	}
	out, err := op(t)
	if err != nil {
		return nil, err
	}
	res, err := FromFrame(out, 0)
	if err != nil {
		return nil, err
	}
	res.Name = s.Name + suffix
	return res, nil
}

// PctChange returns the relative change of each value, see frame.PctChange.
func (s *Series) PctChange(opts ...frame.PctChangeOption) (*Series, error) {
	return s.apply(func(t *frame.Table) (*frame.Table, error) {
		return frame.PctChange(t, opts...)
	}, "_pct_change")
}

// Fill propagates known values into missing runs, see frame.Fill.
func (s *Series) Fill(method frame.FillMethod, limit int) (*Series, error) {
	return s.apply(func(t *frame.Table) (*frame.Table, error) {
		return frame.Fill(t, method, limit, frame.RowAxis)
	}, "")
}

// Shift lags the series by periods positions.
func (s *Series) Shift(periods int) (*Series, error) {
	return s.apply(func(t *frame.Table) (*frame.Table, error) {
		return frame.Shift(t, periods, frame.RowAxis)
	}, "_shift")
}

// ShiftFreq lags a time series by a frequency offset, keeping its labels.
func (s *Series) ShiftFreq(off offset.Offset) (*Series, error) {
	return s.apply(func(t *frame.Table) (*frame.Table, error) {
		return frame.ShiftFreq(t, off, frame.RowAxis)
	}, "_shift")
}

// CountMissing returns the number of missing values.
func (s *Series) CountMissing() int {
	n := 0
	for _, v := range s.Values {
		if frame.IsMissing(v) {
			n++
		}
	}
	return n
}

// LoadCSVColumn loads one column of a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	t, err := frame.LoadCSV(filename, nil)
	if err != nil {
		return nil, err
	}
	for c, name := range t.Columns() {
		if name == column {
			return FromFrame(t, c)
		}
	}
	return nil, fmt.Errorf("column %q not found", column)
}
