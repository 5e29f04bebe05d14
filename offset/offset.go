package offset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ErrInvalidOffset is wrapped by every ParseError.
var ErrInvalidOffset = errors.New("invalid frequency offset")

// Unit is the base step of an Offset.
type Unit int

const (
	Day Unit = iota
	BusinessDay
	Week
	Hour
	Minute
	Second
	Millisecond
)

var unitAliases = map[string]Unit{
	"D":   Day,
	"B":   BusinessDay,
	"W":   Week,
	"H":   Hour,
	"h":   Hour,
	"T":   Minute,
	"min": Minute,
	"S":   Second,
	"s":   Second,
	"L":   Millisecond,
	"ms":  Millisecond,
}

var unitNames = map[Unit]string{
	Day:         "D",
	BusinessDay: "B",
	Week:        "W",
	Hour:        "H",
	Minute:      "min",
	Second:      "S",
	Millisecond: "ms",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// tick returns the fixed duration of clock units, or zero for calendar units.
func (u Unit) tick() time.Duration {
	switch u {
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	case Hour:
		return time.Hour
	case Minute:
		return time.Minute
	case Second:
		return time.Second
	case Millisecond:
		return time.Millisecond
	}
	return 0
}

// Offset is N steps of Unit.
type Offset struct {
	N    int
	Unit Unit
}

// Days returns an offset of n calendar days.
func Days(n int) Offset { return Offset{N: n, Unit: Day} }

// BusinessDays returns an offset of n business days.
func BusinessDays(n int) Offset { return Offset{N: n, Unit: BusinessDay} }

// String renders the offset in the form accepted by Parse.
func (o Offset) String() string {
	return strconv.Itoa(o.N) + o.Unit.String()
}

// Multiply scales the offset by k.
func (o Offset) Multiply(k int) Offset {
	return Offset{N: o.N * k, Unit: o.Unit}
}

// Apply advances t by the offset. Clock units add a fixed duration; business
// days follow weekday arithmetic and keep the wall-clock time of t.
func (o Offset) Apply(t time.Time) time.Time {
	if o.Unit == BusinessDay {
		return addBusinessDays(t, o.N)
	}
	return t.Add(time.Duration(o.N) * o.Unit.tick())
}

// OnOffset reports whether t is a label the offset could produce from
// another on-offset label. Only business days restrict this.
func (o Offset) OnOffset(t time.Time) bool {
	if o.Unit == BusinessDay {
		return weekday(t) < 5
	}
	return true
}

// ParseError describes a frequency spec that could not be parsed.
type ParseError struct {
	Spec string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset: parse %q: %v", e.Spec, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts a spec such as "5B", "-3D", "W" or "30min" into an Offset.
// A missing multiplier means 1.
func Parse(spec string) (Offset, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Offset{}, &ParseError{Spec: spec, Err: fmt.Errorf("%w: empty spec", ErrInvalidOffset)}
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '-' && r != '+'
	})
	if split < 0 {
		return Offset{}, &ParseError{Spec: spec, Err: fmt.Errorf("%w: missing unit", ErrInvalidOffset)}
	}

	n := 1
	if num := s[:split]; num != "" {
		if num == "-" || num == "+" {
			num += "1"
		}
		v, err := strconv.Atoi(num)
		if err != nil {
			return Offset{}, &ParseError{Spec: spec, Err: fmt.Errorf("%w: bad multiplier %q", ErrInvalidOffset, s[:split])}
		}
		n = v
	}

	unit, ok := unitAliases[s[split:]]
	if !ok {
		return Offset{}, &ParseError{Spec: spec, Err: fmt.Errorf("%w: unknown unit %q", ErrInvalidOffset, s[split:])}
	}
	return Offset{N: n, Unit: unit}, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(spec string) Offset {
	o, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return o
}

// DateRange returns periods labels starting at start and spaced by step.
// For business-day steps a weekend start rolls forward to Monday.
func DateRange(start time.Time, periods int, step Offset) []time.Time {
	if periods <= 0 {
		return []time.Time{}
	}
	if step.Unit == BusinessDay && !step.OnOffset(start) {
		start = addBusinessDays(start, 0)
	}

	labels := make([]time.Time, periods)
	labels[0] = start
	for i := 1; i < periods; i++ {
		labels[i] = step.Apply(labels[i-1])
	}
	return labels
}
