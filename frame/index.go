package frame

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sartorproj/goframe/offset"
)

// LabelKind is the type of labels an Index holds.
type LabelKind int

const (
	// IntLabels are int64 labels, such as row positions.
	IntLabels LabelKind = iota
	// TimeLabels are instants, such as trading days.
	TimeLabels
	// StringLabels are free-form names, such as column labels.
	StringLabels
)

func (k LabelKind) String() string {
	switch k {
	case IntLabels:
		return "int"
	case TimeLabels:
		return "time"
	case StringLabels:
		return "string"
	}
	return fmt.Sprintf("LabelKind(%d)", int(k))
}

// Index is an ordered sequence of labels of a single kind. Labels need not
// be sorted or unique. An Index is never modified after construction.
type Index struct {
	kind  LabelKind
	ints  []int64
	times []time.Time
	strs  []string

	name   string // header the labels were read from
	layout string // time layout the labels were parsed with
}

// labelKey is a comparable form of a label used for lookups. Time labels are
// keyed by instant, so equal instants in different locations match.
type labelKey struct {
	n int64
	s string
}

// NewIntIndex creates an index of integer labels.
func NewIntIndex(labels []int64) *Index {
	ints := make([]int64, len(labels))
	copy(ints, labels)
	return &Index{kind: IntLabels, ints: ints}
}

// RangeIndex creates the integer index 0..n-1.
func RangeIndex(n int) *Index {
	ints := make([]int64, n)
	for i := range ints {
		ints[i] = int64(i)
	}
	return &Index{kind: IntLabels, ints: ints}
}

// NewTimeIndex creates an index of time labels.
func NewTimeIndex(labels []time.Time) *Index {
	times := make([]time.Time, len(labels))
	copy(times, labels)
	return &Index{kind: TimeLabels, times: times}
}

// NewStringIndex creates an index of string labels.
func NewStringIndex(labels []string) *Index {
	strs := make([]string, len(labels))
	copy(strs, labels)
	return &Index{kind: StringLabels, strs: strs}
}

// DateRange creates a time index of periods labels spaced by step.
func DateRange(start time.Time, periods int, step offset.Offset) *Index {
	return &Index{kind: TimeLabels, times: offset.DateRange(start, periods, step)}
}

// Name returns the index name, usually the CSV header of the label column.
func (ix *Index) Name() string { return ix.name }

// WithName returns a copy of the index carrying name.
func (ix *Index) WithName(name string) *Index {
	out := *ix
	out.name = name
	return &out
}

// Layout returns the time layout the labels were parsed with, if any.
func (ix *Index) Layout() string { return ix.layout }

// Kind returns the label kind.
func (ix *Index) Kind() LabelKind { return ix.kind }

// Len returns the number of labels.
func (ix *Index) Len() int {
	switch ix.kind {
	case TimeLabels:
		return len(ix.times)
	case StringLabels:
		return len(ix.strs)
	}
	return len(ix.ints)
}

// Int returns the i-th label of an integer index.
func (ix *Index) Int(i int) int64 { return ix.ints[i] }

// Time returns the i-th label of a time index.
func (ix *Index) Time(i int) time.Time { return ix.times[i] }

// Label formats the i-th label as a string.
func (ix *Index) Label(i int) string {
	switch ix.kind {
	case TimeLabels:
		return ix.times[i].Format(time.RFC3339)
	case StringLabels:
		return ix.strs[i]
	}
	return strconv.FormatInt(ix.ints[i], 10)
}

// Strings returns every label formatted with Label.
func (ix *Index) Strings() []string {
	out := make([]string, ix.Len())
	for i := range out {
		out[i] = ix.Label(i)
	}
	return out
}

// Times returns a copy of the labels of a time index, or nil otherwise.
func (ix *Index) Times() []time.Time {
	if ix.kind != TimeLabels {
		return nil
	}
	out := make([]time.Time, len(ix.times))
	copy(out, ix.times)
	return out
}

func (ix *Index) key(i int) labelKey {
	switch ix.kind {
	case TimeLabels:
		return labelKey{n: ix.times[i].UnixNano()}
	case StringLabels:
		return labelKey{s: ix.strs[i]}
	}
	return labelKey{n: ix.ints[i]}
}

// Equal reports whether both indexes hold the same kind and labels in the
// same order.
func (ix *Index) Equal(other *Index) bool {
	if ix == other {
		return true
	}
	if ix == nil || other == nil || ix.kind != other.kind || ix.Len() != other.Len() {
		return false
	}
	for i := 0; i < ix.Len(); i++ {
		if ix.kind == TimeLabels {
			if !ix.times[i].Equal(other.times[i]) {
				return false
			}
			continue
		}
		if ix.key(i) != other.key(i) {
			return false
		}
	}
	return true
}

// Duplicated marks every label that already appeared earlier in the index.
func (ix *Index) Duplicated() []bool {
	seen := make(map[labelKey]struct{}, ix.Len())
	dup := make([]bool, ix.Len())
	for i := range dup {
		k := ix.key(i)
		if _, ok := seen[k]; ok {
			dup[i] = true
			continue
		}
		seen[k] = struct{}{}
	}
	return dup
}

// IsUnique reports whether no label repeats.
func (ix *Index) IsUnique() bool {
	for _, d := range ix.Duplicated() {
		if d {
			return false
		}
	}
	return true
}

// positions maps each label to the position of its first occurrence.
func (ix *Index) positions() map[labelKey]int {
	pos := make(map[labelKey]int, ix.Len())
	for i := 0; i < ix.Len(); i++ {
		k := ix.key(i)
		if _, ok := pos[k]; !ok {
			pos[k] = i
		}
	}
	return pos
}

// take returns the labels at the given positions.
func (ix *Index) take(pos []int) *Index {
	out := &Index{kind: ix.kind, name: ix.name, layout: ix.layout}
	switch ix.kind {
	case TimeLabels:
		out.times = make([]time.Time, len(pos))
		for i, p := range pos {
			out.times[i] = ix.times[p]
		}
	case StringLabels:
		out.strs = make([]string, len(pos))
		for i, p := range pos {
			out.strs[i] = ix.strs[p]
		}
	default:
		out.ints = make([]int64, len(pos))
		for i, p := range pos {
			out.ints[i] = ix.ints[p]
		}
	}
	return out
}

// Advance returns a new index with every label moved by off. Only time
// indexes can be advanced.
func (ix *Index) Advance(off offset.Offset) (*Index, error) {
	if ix.kind != TimeLabels {
		return nil, fmt.Errorf("%w: cannot apply offset %s to %s labels", ErrNotTemporal, off, ix.kind)
	}
	times := make([]time.Time, len(ix.times))
	for i, t := range ix.times {
		times[i] = off.Apply(t)
	}
	return &Index{kind: TimeLabels, times: times, name: ix.name, layout: ix.layout}, nil
}
