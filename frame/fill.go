package frame

import "fmt"

// Fill propagates known values into missing runs along axis. limit caps the
// number of consecutive missing values filled in each run; zero means no cap.
// Every lane is filled independently and the run counter starts fresh on
// each call.
func Fill(t *Table, method FillMethod, limit int, axis Axis) (*Table, error) {
	if err := method.validate(); err != nil {
		return nil, err
	}
	if err := axis.validate(); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative, got %d", ErrInvalidArgument, limit)
	}

	switch method {
	case FillPad:
		return mapLanes(t, axis, func(lane []float64) { padLane(lane, limit) }), nil
	case FillBackfill:
		return mapLanes(t, axis, func(lane []float64) { backfillLane(lane, limit) }), nil
	}
	return t.Copy(), nil
}

func padLane(lane []float64, limit int) {
	var last float64
	seen := false
	run := 0
	for i, v := range lane {
		if !IsMissing(v) {
			last, seen, run = v, true, 0
			continue
		}
		run++
		if seen && (limit == 0 || run <= limit) {
			lane[i] = last
		}
	}
}

func backfillLane(lane []float64, limit int) {
	var next float64
	seen := false
	run := 0
	for i := len(lane) - 1; i >= 0; i-- {
		v := lane[i]
		if !IsMissing(v) {
			next, seen, run = v, true, 0
			continue
		}
		run++
		if seen && (limit == 0 || run <= limit) {
			lane[i] = next
		}
	}
}
