// Package cli implements the replaydemo command line.
package cli

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gogpu/replay"
	"github.com/gogpu/replay/engine"
	"github.com/gogpu/replay/internal/config"
)

// version can be overridden at build time via:
// go build -ldflags "-X github.com/gogpu/replay/internal/cli.version=1.2.3"
var version = "0.1.0"

var (
	cfg config.Config

	flagRangeMin int
	flagRangeMax int
	flagStride   int
	flagZoom     float64
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "replaydemo",
	Short: "Record and replay gesture tracks",
	Long: color.CyanString("replaydemo") +
		"\nScripts a gesture session against the replay engine, scrubs it and renders frames.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = apply(cmd, loaded)
		if err := cfg.Validate(); err != nil {
			return err
		}
		level, _ := cfg.Level()
		replay.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		})))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagRangeMin, "range-min", 0, "first frame of the timeline (overrides REPLAY_RANGE_MIN)")
	pf.IntVar(&flagRangeMax, "range-max", 0, "last frame of the timeline (overrides REPLAY_RANGE_MAX)")
	pf.IntVar(&flagStride, "stride", 0, "frames advanced per tick (overrides REPLAY_STRIDE)")
	pf.Float64Var(&flagZoom, "zoom", 0, "pixels per frame for scrubbing (overrides REPLAY_ZOOM)")
	pf.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (overrides REPLAY_LOG_LEVEL)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(runCmd)
}

// apply overlays the flags the user set on the environment configuration.
func apply(cmd *cobra.Command, cfg config.Config) config.Config {
	f := cmd.Flags()
	if f.Changed("range-min") {
		cfg.RangeMin = flagRangeMin
	}
	if f.Changed("range-max") {
		cfg.RangeMax = flagRangeMax
	}
	if f.Changed("stride") {
		cfg.Stride = flagStride
	}
	if f.Changed("zoom") {
		cfg.Zoom = flagZoom
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg
}

// engineOptions maps the configuration onto engine options.
func engineOptions(c config.Config) []engine.Option {
	return []engine.Option{
		engine.WithRange(c.RangeMin, c.RangeMax),
		engine.WithStride(c.Stride),
		engine.WithZoom(c.Zoom),
		engine.WithRecording(c.Record),
	}
}
