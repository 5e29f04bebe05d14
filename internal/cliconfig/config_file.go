package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML files. Pointers distinguish an unset
// number from zero.
type FileConfig struct {
	IndexColumn       string `toml:"index_column"`
	DateFormat        string `toml:"date_format"`
	Delimiter         string `toml:"delimiter"`
	Periods           *int   `toml:"periods"`
	Freq              string `toml:"freq"`
	FillMethod        string `toml:"fill_method"`
	Limit             *int   `toml:"limit"`
	Axis              *int   `toml:"axis"`
	Workers           *int   `toml:"workers"`
	ParallelThreshold *int   `toml:"parallel_threshold"`
	LogLevel          string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.goframe/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".goframe", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("index-column", fc.IndexColumn, &cfg.IndexColumn)
	s.setString("date-format", fc.DateFormat, &cfg.DateFormat)
	s.setString("delimiter", fc.Delimiter, &cfg.Delimiter)
	s.setString("freq", fc.Freq, &cfg.Freq)
	s.setString("fill-method", fc.FillMethod, &cfg.FillMethod)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("periods", fc.Periods, &cfg.Periods)
	s.setInt("limit", fc.Limit, &cfg.Limit)
	s.setInt("axis", fc.Axis, &cfg.Axis)
	s.setInt("workers", fc.Workers, &cfg.Workers)
	s.setInt("parallel-threshold", fc.ParallelThreshold, &cfg.ParallelThreshold)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
