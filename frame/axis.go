package frame

import (
	"fmt"
	"strings"
)

// Axis selects the dimension an operation runs along.
type Axis int

const (
	// RowAxis runs down each column, from the first row to the last.
	RowAxis Axis = 0
	// ColumnAxis runs across each row, from the first column to the last.
	ColumnAxis Axis = 1
)

// ParseAxis validates an integer axis number.
func ParseAxis(n int) (Axis, error) {
	a := Axis(n)
	if err := a.validate(); err != nil {
		return 0, err
	}
	return a, nil
}

func (a Axis) validate() error {
	if a != RowAxis && a != ColumnAxis {
		return fmt.Errorf("%w: %d", ErrUnsupportedAxis, int(a))
	}
	return nil
}

func (a Axis) String() string {
	switch a {
	case RowAxis:
		return "rows"
	case ColumnAxis:
		return "columns"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// FillMethod selects how missing runs are propagated.
type FillMethod int

const (
	// FillNone leaves missing values in place.
	FillNone FillMethod = iota
	// FillPad carries the last known value forward.
	FillPad
	// FillBackfill carries the next known value backward.
	FillBackfill
)

// ParseFillMethod maps a method name to a FillMethod. The empty string and
// "none" mean FillNone.
func ParseFillMethod(name string) (FillMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return FillNone, nil
	case "pad", "ffill":
		return FillPad, nil
	case "bfill", "backfill":
		return FillBackfill, nil
	}
	return FillNone, fmt.Errorf("%w: unknown fill method %q", ErrInvalidArgument, name)
}

func (m FillMethod) validate() error {
	if m < FillNone || m > FillBackfill {
		return fmt.Errorf("%w: unknown fill method %d", ErrInvalidArgument, int(m))
	}
	return nil
}

func (m FillMethod) String() string {
	switch m {
	case FillNone:
		return "none"
	case FillPad:
		return "pad"
	case FillBackfill:
		return "bfill"
	}
	return fmt.Sprintf("FillMethod(%d)", int(m))
}
