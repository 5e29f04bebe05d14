// Package frametest provides table assertions for tests.
package frametest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goframe/frame"
)

func columns(t *frame.Table) [][]float64 {
	out := make([][]float64, t.NumCols())
	for c := range out {
		out[c] = t.ColumnAt(c)
	}
	return out
}

// Diff returns a human readable difference between two tables, or "" when
// they are equal. Missing cells compare equal to each other.
func Diff(want, got *frame.Table) string {
	return diff(want, got, cmpopts.EquateNaNs())
}

// DiffApprox is Diff with values compared within an absolute tolerance.
func DiffApprox(want, got *frame.Table, tol float64) string {
	return diff(want, got, cmpopts.EquateNaNs(), cmpopts.EquateApprox(0, tol))
}

func diff(want, got *frame.Table, opts ...cmp.Option) string {
	wr, wc := want.Shape()
	gr, gc := got.Shape()
	if wr != gr || wc != gc {
		return cmp.Diff([2]int{wr, wc}, [2]int{gr, gc})
	}
	if !want.Index().Equal(got.Index()) {
		return cmp.Diff(want.Index().Strings(), got.Index().Strings())
	}
	if d := cmp.Diff(want.Columns(), got.Columns()); d != "" {
		return d
	}
	return cmp.Diff(columns(want), columns(got), opts...)
}

// Equal reports whether two tables have the same shape, labels and values.
func Equal(want, got *frame.Table) bool {
	return Diff(want, got) == ""
}

// AssertEqual fails the test unless want and got are equal tables.
func AssertEqual(t testing.TB, want, got *frame.Table) {
	t.Helper()
	require.NotNil(t, want)
	require.NotNil(t, got)
	if diff := Diff(want, got); diff != "" {
		assert.Fail(t, "tables differ", "(-want +got):\n%s", diff)
	}
}

// AssertClose is AssertEqual with values compared within tol.
func AssertClose(t testing.TB, want, got *frame.Table, tol float64) {
	t.Helper()
	require.NotNil(t, want)
	require.NotNil(t, got)
	if diff := DiffApprox(want, got, tol); diff != "" {
		assert.Fail(t, "tables differ", "(-want +got):\n%s", diff)
	}
}
