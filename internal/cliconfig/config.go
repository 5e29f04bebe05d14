package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sartorproj/goframe/frame"
	"github.com/sartorproj/goframe/offset"
)

// Config holds CLI configuration for goframe.
type Config struct {
	Input       string
	Output      string
	IndexColumn string
	DateFormat  string
	Delimiter   string

	Periods    int
	Freq       string
	FillMethod string
	Limit      int
	Axis       int

	Workers           int
	ParallelThreshold int
	LogLevel          string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DateFormat:        "2006-01-02",
		Delimiter:         ",",
		Periods:           1,
		FillMethod:        "pad",
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 1 << 16,
		LogLevel:          "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := frame.ParseFillMethod(c.FillMethod); err != nil {
		return fmt.Errorf("fill-method: %w", err)
	}
	if _, err := frame.ParseAxis(c.Axis); err != nil {
		return fmt.Errorf("axis: %w", err)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	if c.Freq != "" {
		if _, err := offset.Parse(c.Freq); err != nil {
			return err
		}
	}
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}

// CSVOptions converts the I/O settings for the frame package.
func (c *Config) CSVOptions() *frame.CSVOptions {
	opts := frame.DefaultCSVOptions()
	opts.IndexColumn = c.IndexColumn
	if c.DateFormat != "" {
		opts.DateFormat = c.DateFormat
	}
	if r := []rune(c.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	return opts
}

// EngineOptions converts the scheduling settings for the frame package.
func (c *Config) EngineOptions() frame.Options {
	return frame.Options{
		Workers:           c.Workers,
		ParallelThreshold: c.ParallelThreshold,
	}
}

// PctChangeOptions converts the percent change settings. A period count
// other than 1 is passed along with a frequency so the engine rejects the
// combination.
func (c *Config) PctChangeOptions() ([]frame.PctChangeOption, error) {
	method, err := frame.ParseFillMethod(c.FillMethod)
	if err != nil {
		return nil, err
	}
	axis, err := frame.ParseAxis(c.Axis)
	if err != nil {
		return nil, err
	}

	opts := []frame.PctChangeOption{
		frame.WithFillMethod(method),
		frame.WithLimit(c.Limit),
		frame.WithAxis(axis),
	}
	if c.Freq != "" {
		opts = append(opts, frame.WithFreq(c.Freq))
	}
	if c.Freq == "" || c.Periods != 1 {
		opts = append(opts, frame.WithPeriods(c.Periods))
	}
	return opts, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
