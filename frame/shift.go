package frame

import (
	"fmt"

	"github.com/sartorproj/goframe/offset"
)

// Shift moves values periods positions along axis. Position i of each lane
// receives the value from position i-periods; vacated positions are missing.
// Negative periods shift toward the start. Labels are unchanged.
func Shift(t *Table, periods int, axis Axis) (*Table, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}
	if periods == 0 {
		return t.Copy(), nil
	}
	return mapLanes(t, axis, func(lane []float64) {
		shiftLane(lane, periods)
	}), nil
}

func shiftLane(lane []float64, periods int) {
	n := len(lane)
	switch {
	case periods >= n || periods <= -n:
		fillMissing(lane)
	case periods > 0:
		copy(lane[periods:], lane[:n-periods])
		fillMissing(lane[:periods])
	case periods < 0:
		copy(lane, lane[-periods:])
		fillMissing(lane[n+periods:])
	}
}

// Redate returns t with every row label advanced by off. Values keep their
// positions, so the value that was at label L is now at label L+off.
func Redate(t *Table, off offset.Offset) (*Table, error) {
	index, err := t.index.Advance(off)
	if err != nil {
		return nil, err
	}
	return newTable(index, t.columns, copyData(t.data)), nil
}

// ShiftFreq shifts rows by a frequency offset instead of a period count and
// aligns the result back onto t's index: the row at label L holds the value
// that t had at L-off, or missing when t has no such label. Only RowAxis is
// supported.
func ShiftFreq(t *Table, off offset.Offset, axis Axis) (*Table, error) {
	if err := axis.validate(); err != nil {
		return nil, err
	}
	if axis != RowAxis {
		return nil, fmt.Errorf("%w: frequency shift runs along %s only", ErrUnsupportedAxis, RowAxis)
	}

	redated, err := Redate(t, off)
	if err != nil {
		return nil, err
	}
	return Reindex(DropDuplicateLabels(redated), t.index)
}
