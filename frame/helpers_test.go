package frame_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goframe/frame"
	"github.com/sartorproj/goframe/offset"
)

var nan = math.NaN()

// makeTimeFrame returns 30 business days of four random columns starting
// Monday 2000-01-03, with missing runs of length one to four sprinkled in.
func makeTimeFrame(t *testing.T) *frame.Table {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	idx := frame.DateRange(time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), 30, offset.BusinessDays(1))

	data := make([][]float64, 4)
	for c := range data {
		data[c] = make([]float64, idx.Len())
		for r := range data[c] {
			data[c][r] = rng.NormFloat64()
		}
	}
	holes := map[int][]int{
		0: {0, 5, 6},
		1: {3, 12, 13, 14},
		2: {20, 21, 22, 23, 29},
		3: {8, 17, 18},
	}
	for c, rows := range holes {
		for _, r := range rows {
			data[c][r] = nan
		}
	}

	tbl, err := frame.New(idx, []string{"A", "B", "C", "D"}, data)
	require.NoError(t, err)
	return tbl
}

func mustRows(t *testing.T, index *frame.Index, columns []string, rows [][]float64) *frame.Table {
	t.Helper()
	tbl, err := frame.FromRows(index, columns, rows)
	require.NoError(t, err)
	return tbl
}

// ratio computes cur/prev - 1 cell by cell without going through the engine.
func ratio(t *testing.T, cur, prev *frame.Table) *frame.Table {
	t.Helper()
	rows, cols := cur.Shape()
	data := make([][]float64, cols)
	for c := range data {
		data[c] = make([]float64, rows)
		for r := range data[c] {
			data[c][r] = cur.At(r, c)/prev.At(r, c) - 1
		}
	}
	tbl, err := frame.New(cur.Index(), cur.Columns(), data)
	require.NoError(t, err)
	return tbl
}

func mustFill(t *testing.T, tbl *frame.Table, m frame.FillMethod, limit int, axis frame.Axis) *frame.Table {
	t.Helper()
	out, err := frame.Fill(tbl, m, limit, axis)
	require.NoError(t, err)
	return out
}

func mustShift(t *testing.T, tbl *frame.Table, periods int, axis frame.Axis) *frame.Table {
	t.Helper()
	out, err := frame.Shift(tbl, periods, axis)
	require.NoError(t, err)
	return out
}
