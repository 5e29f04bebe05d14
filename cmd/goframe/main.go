// Command goframe computes fills, shifts and percent changes over CSV tables.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/sartorproj/goframe/frame"
	"github.com/sartorproj/goframe/internal/cliconfig"
	"github.com/sartorproj/goframe/offset"
)

var exampleUsage = strings.TrimSpace(`
  goframe pct-change --input prices.csv
  goframe pct-change --freq 5B --fill-method none < prices.csv
  goframe shift --periods -1 --axis 1 --input prices.csv
  goframe fill --fill-method bfill --limit 2 --input prices.csv --output filled.csv
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("goframe")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "goframe",
		Short:         "Missing-aware fill, shift and percent change over CSV tables",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Config file first, then GOFRAME_* env, then flags.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		changed := map[string]bool{}
		cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

		cfgFile := cfgPath
		if cfgFile == "" {
			cfgFile = cliconfig.DefaultConfigPath()
		}
		if cfgFile != "" && cliconfig.FileExists(cfgFile) {
			fc, err := cliconfig.LoadFileConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cliconfig.ApplyFileConfig(&cfg, fc, changed)
		}
		if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
			return fmt.Errorf("env config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cliconfig.SetLevel(cfg.LogLevel); err != nil {
			return err
		}

		log := cliconfig.Logger()
		frame.SetLogger(log.With().Str("component", "frame").Logger())
		frame.Configure(cfg.EngineOptions())
		log.Debug().Interface("config", cfg).Msg("configuration")
		return nil
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.goframe/config.toml)")
	pf.StringVarP(&cfg.Input, "input", "i", cfg.Input, "input CSV file (default: stdin)")
	pf.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output CSV file (default: stdout)")
	pf.StringVar(&cfg.IndexColumn, "index-column", cfg.IndexColumn, "column holding row labels (default: auto-detect)")
	pf.StringVar(&cfg.DateFormat, "date-format", cfg.DateFormat, "layout of date labels")
	pf.StringVar(&cfg.Delimiter, "delimiter", cfg.Delimiter, "field delimiter")
	pf.IntVar(&cfg.Axis, "axis", cfg.Axis, "0 to run down columns, 1 to run across rows")
	pf.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines per operation")
	pf.IntVar(&cfg.ParallelThreshold, "parallel-threshold", cfg.ParallelThreshold, "minimum cells before lanes run concurrently")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newPctChangeCmd(&cfg),
		newShiftCmd(&cfg),
		newFillCmd(&cfg),
	)
	return root
}

func newPctChangeCmd(cfg *cliconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pct-change",
		Short: "Percent change from N periods or one frequency offset ago: v[t]/v[t-N] - 1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cfg.PctChangeOptions()
			if err != nil {
				return err
			}
			return transform(cmd, cfg, func(t *frame.Table) (*frame.Table, error) {
				return frame.PctChange(t, opts...)
			})
		},
	}
	addPeriodFlags(cmd, cfg)
	addFillFlags(cmd, cfg)
	return cmd
}

func newShiftCmd(cfg *cliconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Shift values by N periods, or rows by a frequency offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := frame.ParseAxis(cfg.Axis)
			if err != nil {
				return err
			}
			return transform(cmd, cfg, func(t *frame.Table) (*frame.Table, error) {
				if cfg.Freq == "" {
					return frame.Shift(t, cfg.Periods, axis)
				}
				off, err := offset.Parse(cfg.Freq)
				if err != nil {
					return nil, err
				}
				return frame.ShiftFreq(t, off.Multiply(cfg.Periods), axis)
			})
		},
	}
	addPeriodFlags(cmd, cfg)
	return cmd
}

func newFillCmd(cfg *cliconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill missing values forward (pad) or backward (bfill)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := frame.ParseFillMethod(cfg.FillMethod)
			if err != nil {
				return err
			}
			axis, err := frame.ParseAxis(cfg.Axis)
			if err != nil {
				return err
			}
			return transform(cmd, cfg, func(t *frame.Table) (*frame.Table, error) {
				return frame.Fill(t, method, cfg.Limit, axis)
			})
		},
	}
	addFillFlags(cmd, cfg)
	return cmd
}

func addPeriodFlags(cmd *cobra.Command, cfg *cliconfig.Config) {
	cmd.Flags().IntVarP(&cfg.Periods, "periods", "p", cfg.Periods, "number of positions to shift")
	cmd.Flags().StringVar(&cfg.Freq, "freq", cfg.Freq, "frequency offset such as 5B or 3D (rows only)")
}

func addFillFlags(cmd *cobra.Command, cfg *cliconfig.Config) {
	cmd.Flags().StringVar(&cfg.FillMethod, "fill-method", cfg.FillMethod, "pad, bfill or none")
	cmd.Flags().IntVar(&cfg.Limit, "limit", cfg.Limit, "maximum consecutive missing values to fill (0: no limit)")
}

// transform reads the input table, applies op and writes the result.
func transform(cmd *cobra.Command, cfg *cliconfig.Config, op func(*frame.Table) (*frame.Table, error)) error {
	log := cliconfig.Logger()
	csvOpts := cfg.CSVOptions()

	var in io.Reader = cmd.InOrStdin()
	if cfg.Input != "" && cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	t, err := frame.ReadCSV(in, csvOpts)
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}
	rows, cols := t.Shape()
	log.Debug().Int("rows", rows).Int("cols", cols).Int("missing", t.CountMissing()).Msg("table loaded")

	out, err := op(t)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if cfg.Output != "" && cfg.Output != "-" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := frame.WriteCSV(w, out, csvOpts); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	log.Info().Str("command", cmd.Name()).Int("rows", rows).Int("missing", out.CountMissing()).Msg("done")
	return nil
}
