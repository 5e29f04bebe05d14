package frame_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goframe/frame"
	"github.com/sartorproj/goframe/frame/frametest"
	"github.com/sartorproj/goframe/offset"
)

func TestPctChangeNumeric(t *testing.T) {
	for _, last := range []float64{60, 90} {
		pnl := mustRows(t, nil, nil, [][]float64{
			{0, 10, 20, 30},
			{nan, nan, 20, 30},
			{0, 10, 20, last},
		})

		for _, axis := range []frame.Axis{frame.RowAxis, frame.ColumnAxis} {
			filled := mustFill(t, pnl, frame.FillPad, 0, axis)
			expected := ratio(t, filled, mustShift(t, filled, 1, axis))

			result, err := frame.PctChange(pnl, frame.WithAxis(axis), frame.WithFillMethod(frame.FillPad))
			require.NoError(t, err)
			frametest.AssertEqual(t, expected, result)
		}

		result, err := frame.PctChange(pnl)
		require.NoError(t, err)
		for c := 0; c < 4; c++ {
			assert.True(t, frame.IsMissing(result.At(0, c)), "row 0 column %d should be missing", c)
		}
		assert.Equal(t, last/30-1, result.At(2, 3))
	}
}

func TestPctChangeColumnAxisValues(t *testing.T) {
	pnl := mustRows(t, nil, nil, [][]float64{
		{0, 10, 20, 30},
		{nan, nan, 20, 30},
	})

	result, err := frame.PctChange(pnl, frame.WithAxis(frame.ColumnAxis))
	require.NoError(t, err)

	assert.True(t, frame.IsMissing(result.At(0, 0)))
	assert.True(t, math.IsInf(result.At(0, 1), 1), "10/0 - 1 should be +Inf, got %v", result.At(0, 1))
	assert.Equal(t, 1.0, result.At(0, 2))
	assert.Equal(t, 0.5, result.At(0, 3))

	// Leading missing values have nothing to pad from.
	assert.True(t, frame.IsMissing(result.At(1, 0)))
	assert.True(t, frame.IsMissing(result.At(1, 1)))
	assert.True(t, frame.IsMissing(result.At(1, 2)))
	assert.Equal(t, 0.5, result.At(1, 3))
}

func TestPctChangeShiftOverNAs(t *testing.T) {
	s := []float64{1.0, 1.5, nan, 2.5, 3.0}
	df, err := frame.New(nil, []string{"a", "b"}, [][]float64{s, s})
	require.NoError(t, err)

	chg, err := frame.PctChange(df)
	require.NoError(t, err)

	expected := []float64{nan, 0.5, 0.0, 2.5/1.5 - 1, 0.2}
	edf, err := frame.New(nil, []string{"a", "b"}, [][]float64{expected, expected})
	require.NoError(t, err)
	frametest.AssertClose(t, edf, chg, 1e-12)
}

func TestPctChange(t *testing.T) {
	tf := makeTimeFrame(t)

	t.Run("no fill", func(t *testing.T) {
		rs, err := frame.PctChange(tf, frame.WithFillMethod(frame.FillNone))
		require.NoError(t, err)
		frametest.AssertEqual(t, ratio(t, tf, mustShift(t, tf, 1, frame.RowAxis)), rs)
	})

	t.Run("two periods", func(t *testing.T) {
		rs, err := frame.PctChange(tf, frame.WithPeriods(2))
		require.NoError(t, err)
		filled := mustFill(t, tf, frame.FillPad, 0, frame.RowAxis)
		frametest.AssertEqual(t, ratio(t, filled, mustShift(t, filled, 2, frame.RowAxis)), rs)
	})

	t.Run("backfill with limit", func(t *testing.T) {
		rs, err := frame.PctChange(tf, frame.WithFillMethod(frame.FillBackfill), frame.WithLimit(1))
		require.NoError(t, err)
		filled := mustFill(t, tf, frame.FillBackfill, 1, frame.RowAxis)
		frametest.AssertEqual(t, ratio(t, filled, mustShift(t, filled, 1, frame.RowAxis)), rs)
	})

	t.Run("calendar frequency", func(t *testing.T) {
		rs, err := frame.PctChange(tf, frame.WithFreq("5D"))
		require.NoError(t, err)

		filled := mustFill(t, tf, frame.FillPad, 0, frame.RowAxis)
		idx := filled.Index()
		rows, cols := filled.Shape()
		data := make([][]float64, cols)
		for c := range data {
			data[c] = make([]float64, rows)
			for r := range data[c] {
				data[c][r] = nan
				want := idx.Time(r).AddDate(0, 0, -5)
				for p := 0; p < rows; p++ {
					if idx.Time(p).Equal(want) {
						data[c][r] = filled.At(r, c)/filled.At(p, c) - 1
					}
				}
			}
		}
		expected, err := frame.New(idx, filled.Columns(), data)
		require.NoError(t, err)
		frametest.AssertEqual(t, expected, rs)
	})
}

func TestPctChangePeriodsFreq(t *testing.T) {
	tests := []struct {
		freq    string
		periods int
		fill    frame.FillMethod
		limit   int
	}{
		{"5B", 5, frame.FillNone, 0},
		{"3B", 3, frame.FillNone, 0},
		{"3B", 3, frame.FillBackfill, 0},
		{"7B", 7, frame.FillPad, 1},
		{"7B", 7, frame.FillBackfill, 3},
		{"14B", 14, frame.FillNone, 0},
	}

	tf := makeTimeFrame(t)
	empty := frame.Empty(tf.Index(), tf.Columns())

	for _, tt := range tests {
		t.Run(tt.freq+"/"+tt.fill.String(), func(t *testing.T) {
			for _, tbl := range []*frame.Table{tf, empty} {
				rsFreq, err := frame.PctChange(tbl, frame.WithFreq(tt.freq), frame.WithFillMethod(tt.fill), frame.WithLimit(tt.limit))
				require.NoError(t, err)
				rsPeriods, err := frame.PctChange(tbl, frame.WithPeriods(tt.periods), frame.WithFillMethod(tt.fill), frame.WithLimit(tt.limit))
				require.NoError(t, err)
				frametest.AssertEqual(t, rsPeriods, rsFreq)
			}

			rs, err := frame.PctChange(empty, frame.WithFreq(tt.freq), frame.WithFillMethod(tt.fill), frame.WithLimit(tt.limit))
			require.NoError(t, err)
			assert.Equal(t, 30*4, rs.CountMissing())
		})
	}
}

func TestPctChangeWithOffset(t *testing.T) {
	tf := makeTimeFrame(t)

	byOffset, err := frame.PctChange(tf, frame.WithOffset(offset.BusinessDays(4)))
	require.NoError(t, err)
	byPeriods, err := frame.PctChange(tf, frame.WithPeriods(4))
	require.NoError(t, err)
	frametest.AssertEqual(t, byPeriods, byOffset)

	// An explicit period count of one does not conflict with a frequency.
	_, err = frame.PctChange(tf, frame.WithPeriods(1), frame.WithFreq("2B"))
	assert.NoError(t, err)
}

func TestPctChangeIdentity(t *testing.T) {
	tbl := mustRows(t, nil, []string{"x", "y"}, [][]float64{
		{1, 0},
		{nan, -4},
		{3, nan},
	})

	rs, err := frame.PctChange(tbl, frame.WithPeriods(0))
	require.NoError(t, err)

	// After padding: x = [1 1 3], y = [0 -4 -4].
	assert.Equal(t, []float64{0, 0, 0}, rs.ColumnAt(0))
	y := rs.ColumnAt(1)
	assert.True(t, frame.IsMissing(y[0]), "0/0 - 1 should be missing")
	assert.Equal(t, 0.0, y[1])
	assert.Equal(t, 0.0, y[2])
}

func TestPctChangeAxisSymmetry(t *testing.T) {
	tf := makeTimeFrame(t)

	for _, fill := range []frame.FillMethod{frame.FillNone, frame.FillPad, frame.FillBackfill} {
		byRows, err := frame.PctChange(tf, frame.WithFillMethod(fill), frame.WithPeriods(2))
		require.NoError(t, err)
		byCols, err := frame.PctChange(tf.Transpose(), frame.WithFillMethod(fill), frame.WithPeriods(2), frame.WithAxis(frame.ColumnAxis))
		require.NoError(t, err)
		frametest.AssertEqual(t, byRows, byCols.Transpose())
	}
}

func TestPctChangeErrors(t *testing.T) {
	tf := makeTimeFrame(t)
	ints := mustRows(t, nil, []string{"a"}, [][]float64{{1}, {2}})

	tests := []struct {
		name   string
		table  *frame.Table
		opts   []frame.PctChangeOption
		target error
	}{
		{"periods conflict with freq", tf, []frame.PctChangeOption{frame.WithPeriods(3), frame.WithFreq("3B")}, frame.ErrInvalidArgument},
		{"freq and offset", tf, []frame.PctChangeOption{frame.WithFreq("3B"), frame.WithOffset(offset.Days(1))}, frame.ErrInvalidArgument},
		{"freq on columns", tf, []frame.PctChangeOption{frame.WithFreq("3B"), frame.WithAxis(frame.ColumnAxis)}, frame.ErrUnsupportedAxis},
		{"bad axis", tf, []frame.PctChangeOption{frame.WithAxis(frame.Axis(2))}, frame.ErrUnsupportedAxis},
		{"negative limit", tf, []frame.PctChangeOption{frame.WithLimit(-1)}, frame.ErrInvalidArgument},
		{"unknown fill", tf, []frame.PctChangeOption{frame.WithFillMethod(frame.FillMethod(9))}, frame.ErrInvalidArgument},
		{"freq on integer index", ints, []frame.PctChangeOption{frame.WithFreq("1D")}, frame.ErrNotTemporal},
		{"unparseable freq", tf, []frame.PctChangeOption{frame.WithFreq("5Q")}, offset.ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := frame.PctChange(tt.table, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, rs)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	_, err := frame.PctChange(tf, frame.WithFreq("5Q"))
	var pe *offset.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "5Q", pe.Spec)
}

func TestPctChangeDoesNotMutateInput(t *testing.T) {
	tf := makeTimeFrame(t)
	before := tf.Copy()

	_, err := frame.PctChange(tf, frame.WithFillMethod(frame.FillBackfill))
	require.NoError(t, err)
	frametest.AssertEqual(t, before, tf)
}

func TestPctChangeConcurrentLanes(t *testing.T) {
	tf := makeTimeFrame(t)
	t.Cleanup(func() { frame.Configure(frame.DefaultOptions()) })

	for _, axis := range []frame.Axis{frame.RowAxis, frame.ColumnAxis} {
		t.Run(axis.String(), func(t *testing.T) {
			opts := []frame.PctChangeOption{frame.WithFillMethod(frame.FillBackfill), frame.WithLimit(2), frame.WithAxis(axis)}

			frame.Configure(frame.Options{Workers: 1})
			sequential, err := frame.PctChange(tf, opts...)
			require.NoError(t, err)

			frame.Configure(frame.Options{Workers: 4, ParallelThreshold: 1})
			parallel, err := frame.PctChange(tf, opts...)
			require.NoError(t, err)

			frametest.AssertEqual(t, sequential, parallel)
		})
	}
}
