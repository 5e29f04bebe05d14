package frame

import (
	"fmt"

	"github.com/sartorproj/goframe/offset"
)

type pctChangeConfig struct {
	periods    int
	periodsSet bool
	freq       string
	off        *offset.Offset
	fill       FillMethod
	limit      int
	axis       Axis
}

// PctChangeOption configures PctChange.
type PctChangeOption func(*pctChangeConfig)

// WithPeriods sets the number of positions to compare against. Default 1.
func WithPeriods(n int) PctChangeOption {
	return func(c *pctChangeConfig) {
		c.periods = n
		c.periodsSet = true
	}
}

// WithFreq compares each row with the row one frequency offset earlier,
// for example "5B". It is parsed with offset.Parse.
func WithFreq(spec string) PctChangeOption {
	return func(c *pctChangeConfig) { c.freq = spec }
}

// WithOffset is WithFreq for an already parsed offset.
func WithOffset(off offset.Offset) PctChangeOption {
	return func(c *pctChangeConfig) { c.off = &off }
}

// WithFillMethod sets how missing values are filled before comparing.
// Default FillPad.
func WithFillMethod(m FillMethod) PctChangeOption {
	return func(c *pctChangeConfig) { c.fill = m }
}

// WithLimit caps consecutive fills, see Fill.
func WithLimit(n int) PctChangeOption {
	return func(c *pctChangeConfig) { c.limit = n }
}

// WithAxis sets the axis to compare along. Default RowAxis.
func WithAxis(a Axis) PctChangeOption {
	return func(c *pctChangeConfig) { c.axis = a }
}

// PctChange returns the relative change between each value and an earlier
// one along an axis, as filled/shifted - 1.
//
// By default each value is compared with the one a single position earlier.
// With WithFreq or WithOffset, each row is compared with the row whose label
// lies one offset earlier, and rows without such a label are missing. For an
// index spaced by a regular step, a frequency of N steps yields exactly the
// same table as N periods.
//
// Missing values are filled with FillPad first unless another method is
// given. Zero denominators produce ±Inf, not errors.
func PctChange(t *Table, opts ...PctChangeOption) (*Table, error) {
	cfg := pctChangeConfig{periods: 1, fill: FillPad, axis: RowAxis}
	for _, opt := range opts {
		opt(&cfg)
	}

	off, hasFreq, err := cfg.offset()
	if err != nil {
		return nil, err
	}
	if err := cfg.axis.validate(); err != nil {
		return nil, err
	}

	filled, err := Fill(t, cfg.fill, cfg.limit, cfg.axis)
	if err != nil {
		return nil, err
	}

	_, log := settings()
	var shifted *Table
	if hasFreq {
		log.Debug().Stringer("freq", off).Stringer("fill", cfg.fill).Int("limit", cfg.limit).Msg("pct_change by frequency")
		shifted, err = ShiftFreq(filled, off, cfg.axis)
	} else {
		log.Debug().Int("periods", cfg.periods).Stringer("fill", cfg.fill).Int("limit", cfg.limit).Stringer("axis", cfg.axis).Msg("pct_change by periods")
		shifted, err = Shift(filled, cfg.periods, cfg.axis)
	}
	if err != nil {
		return nil, err
	}

	return combineTables(filled, shifted), nil
}

// offset resolves the frequency options. A frequency together with an
// explicit period count other than 1 is rejected.
func (c *pctChangeConfig) offset() (offset.Offset, bool, error) {
	if c.freq != "" && c.off != nil {
		return offset.Offset{}, false, fmt.Errorf("%w: both a frequency spec and an offset were given", ErrInvalidArgument)
	}

	var off offset.Offset
	switch {
	case c.off != nil:
		off = *c.off
	case c.freq != "":
		parsed, err := offset.Parse(c.freq)
		if err != nil {
			return offset.Offset{}, false, err
		}
		off = parsed
	default:
		return offset.Offset{}, false, nil
	}

	if c.periodsSet && c.periods != 1 {
		return offset.Offset{}, false, fmt.Errorf("%w: periods=%d conflicts with freq %s", ErrInvalidArgument, c.periods, off)
	}
	return off, true, nil
}

// combineTables applies Combine cell by cell. Both tables share a shape.
func combineTables(cur, prev *Table) *Table {
	data := make([][]float64, cur.NumCols())
	for c := range data {
		data[c] = make([]float64, cur.NumRows())
		for r := range data[c] {
			data[c][r] = Combine(cur.data[c][r], prev.data[c][r])
		}
	}
	return newTable(cur.index, cur.columns, data)
}
