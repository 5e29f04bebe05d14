package cliconfig

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds the GOFRAME_* environment variables. Values stay strings
// so that unset and zero can be told apart.
type EnvConfig struct {
	IndexColumn       string `envconfig:"INDEX_COLUMN"`
	DateFormat        string `envconfig:"DATE_FORMAT"`
	Delimiter         string `envconfig:"DELIMITER"`
	Periods           string `envconfig:"PERIODS"`
	Freq              string `envconfig:"FREQ"`
	FillMethod        string `envconfig:"FILL_METHOD"`
	Limit             string `envconfig:"LIMIT"`
	Axis              string `envconfig:"AXIS"`
	Workers           string `envconfig:"WORKERS"`
	ParallelThreshold string `envconfig:"PARALLEL_THRESHOLD"`
	LogLevel          string `envconfig:"LOG_LEVEL"`
}

// ApplyEnvConfig applies configuration from environment variables (GOFRAME_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	var env EnvConfig
	if err := envconfig.Process("GOFRAME", &env); err != nil {
		return err
	}

	s := newConfigSetter(changed)

	s.setString("index-column", env.IndexColumn, &cfg.IndexColumn)
	s.setString("date-format", env.DateFormat, &cfg.DateFormat)
	s.setString("delimiter", env.Delimiter, &cfg.Delimiter)
	s.setString("freq", env.Freq, &cfg.Freq)
	s.setString("fill-method", env.FillMethod, &cfg.FillMethod)
	s.setString("log-level", env.LogLevel, &cfg.LogLevel)

	if err := s.setIntFromString("periods", env.Periods, &cfg.Periods); err != nil {
		return err
	}
	if err := s.setIntFromString("limit", env.Limit, &cfg.Limit); err != nil {
		return err
	}
	if err := s.setIntFromString("axis", env.Axis, &cfg.Axis); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", env.Workers, &cfg.Workers); err != nil {
		return err
	}
	if err := s.setIntFromString("parallel-threshold", env.ParallelThreshold, &cfg.ParallelThreshold); err != nil {
		return err
	}
	return nil
}
