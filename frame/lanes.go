package frame

import (
	"golang.org/x/sync/errgroup"
)

// A lane is one 1-D slice along an axis: a column for RowAxis, a row for
// ColumnAxis. Shift and fill are written once against lanes and so work on
// both axes.

// lanes returns copies of every lane along axis.
func (t *Table) lanes(axis Axis) [][]float64 {
	if axis == RowAxis {
		return copyData(t.data)
	}
	out := make([][]float64, t.NumRows())
	for r := range out {
		out[r] = t.Row(r)
	}
	return out
}

// withLanes builds a table with t's labels from lanes along axis.
func (t *Table) withLanes(axis Axis, lanes [][]float64) *Table {
	if axis == RowAxis {
		return newTable(t.index, t.columns, lanes)
	}
	data := make([][]float64, t.NumCols())
	for c := range data {
		data[c] = make([]float64, t.NumRows())
		for r, lane := range lanes {
			data[c][r] = lane[c]
		}
	}
	return newTable(t.index, t.columns, data)
}

// mapLanes applies fn to a copy of every lane along axis and returns the
// resulting table. fn owns its lane exclusively; lanes of large tables run
// concurrently.
func mapLanes(t *Table, axis Axis, fn func(lane []float64)) *Table {
	lanes := t.lanes(axis)
	opts, log := settings()

	rows, cols := t.Shape()
	if opts.Workers < 2 || len(lanes) < 2 || rows*cols < opts.ParallelThreshold {
		for _, lane := range lanes {
			fn(lane)
		}
		return t.withLanes(axis, lanes)
	}

	log.Debug().
		Int("lanes", len(lanes)).
		Int("workers", opts.Workers).
		Stringer("axis", axis).
		Msg("processing lanes concurrently")

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for _, lane := range lanes {
		lane := lane
		g.Go(func() error {
			fn(lane)
			return nil
		})
	}
	_ = g.Wait()

	return t.withLanes(axis, lanes)
}
