// Package config loads replay settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrInvalid is returned by Validate for settings the engine would reject.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the engine and logging settings of a replay session.
type Config struct {
	RangeMin int     `env:"REPLAY_RANGE_MIN" envDefault:"0"`
	RangeMax int     `env:"REPLAY_RANGE_MAX" envDefault:"250"`
	Stride   int     `env:"REPLAY_STRIDE" envDefault:"1"`
	Zoom     float64 `env:"REPLAY_ZOOM" envDefault:"4"`
	Record   bool    `env:"REPLAY_RECORD" envDefault:"true"`
	LogLevel string  `env:"REPLAY_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings against the engine's constraints.
func (c Config) Validate() error {
	var errs []error
	if c.RangeMin > c.RangeMax {
		errs = append(errs, fmt.Errorf("%w: range [%d, %d]", ErrInvalid, c.RangeMin, c.RangeMax))
	}
	if c.Stride < 1 {
		errs = append(errs, fmt.Errorf("%w: stride %d", ErrInvalid, c.Stride))
	}
	if c.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("%w: zoom %g", ErrInvalid, c.Zoom))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel. Accepted values are debug, info, warn and error,
// in any case, optionally with an offset such as "debug-2".
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
