package cliconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goframe/offset"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func mustOffset(t *testing.T, spec string) offset.Offset {
	t.Helper()
	o, err := offset.Parse(spec)
	require.NoError(t, err)
	return o
}
