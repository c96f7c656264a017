// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mincut/contraction"
	"github.com/katalvlaran/mincut/karger"
)

// Env var prefix for every key.
const EnvPrefix = "MINCUT"

// Run modes.
const (
	ModeExecute = "execute"
	ModeApprox  = "approx"
	ModeIterate = "iterate"
	ModeSuccess = "success"
)

// Config manages run configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults that also reads MINCUT_*
// environment variables.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("algorithm.name", karger.NameKargerStein)
	v.SetDefault("algorithm.threshold", karger.DefaultThreshold)
	v.SetDefault("algorithm.mode", ModeExecute)
	v.SetDefault("algorithm.trials", 100)
	v.SetDefault("algorithm.success_prob", 0.99)
	v.SetDefault("algorithm.seed", 0)

	v.SetDefault("performance.workers", 1)

	v.SetDefault("logging.level", "info")

	v.SetDefault("input.strict_symmetry", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file; the format follows the
// extension (yaml, toml, json, ...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Viper exposes the underlying instance for flag binding.
func (c *Config) Viper() *viper.Viper { return c.v }

func (c *Config) Algorithm() string    { return c.v.GetString("algorithm.name") }
func (c *Config) Threshold() int       { return c.v.GetInt("algorithm.threshold") }
func (c *Config) Mode() string         { return strings.ToLower(c.v.GetString("algorithm.mode")) }
func (c *Config) Trials() int          { return c.v.GetInt("algorithm.trials") }
func (c *Config) SuccessProb() float64 { return c.v.GetFloat64("algorithm.success_prob") }
func (c *Config) Seed() int64          { return c.v.GetInt64("algorithm.seed") }
func (c *Config) Workers() int         { return c.v.GetInt("performance.workers") }
func (c *Config) LogLevel() string     { return c.v.GetString("logging.level") }
func (c *Config) StrictSymmetry() bool { return c.v.GetBool("input.strict_symmetry") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Validate checks the values that the algorithms would otherwise reject
// later, so a bad run fails before reading input.
func (c *Config) Validate() error {
	switch c.Mode() {
	case ModeExecute, ModeApprox:
	case ModeIterate:
		if c.Trials() < 1 {
			return fmt.Errorf("algorithm.trials=%d: %w", c.Trials(), ErrInvalidValue)
		}
	case ModeSuccess:
		if p := c.SuccessProb(); p <= 0 || p >= 1 {
			return fmt.Errorf("algorithm.success_prob=%g not in (0,1): %w", p, ErrInvalidValue)
		}
	default:
		return fmt.Errorf("algorithm.mode=%q: %w", c.Mode(), ErrUnknownMode)
	}
	if c.Workers() < 1 {
		return fmt.Errorf("performance.workers=%d: %w", c.Workers(), ErrInvalidValue)
	}

	return nil
}

// CreateLogger creates a console logger on stderr based on logging.level.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.CreateLoggerTo(os.Stderr)
}

// CreateLoggerTo is CreateLogger writing to w. Unknown levels fall back to
// info.
func (c *Config) CreateLoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Str("service", "mincut").Logger()
}

// NewAlgorithm builds the configured algorithm over g with the configured
// seed, workers and logger.
func (c *Config) NewAlgorithm(g *contraction.Graph, logger zerolog.Logger, opts ...karger.Option) (karger.Algorithm, error) {
	base := []karger.Option{
		karger.WithSeed(c.Seed()),
		karger.WithWorkers(c.Workers()),
		karger.WithLogger(logger),
	}

	return karger.ByName(c.Algorithm(), g, c.Threshold(), append(base, opts...)...)
}

// Run executes a according to algorithm.mode.
func (c *Config) Run(a karger.Algorithm, verbose bool) (int64, error) {
	switch c.Mode() {
	case ModeExecute:
		return a.Execute(verbose), nil
	case ModeApprox:
		return a.ApproxExecute(verbose), nil
	case ModeIterate:
		return a.IterateN(c.Trials(), verbose), nil
	case ModeSuccess:
		return a.IterateSuccessLowerBound(c.SuccessProb(), verbose), nil
	default:
		return 0, fmt.Errorf("algorithm.mode=%q: %w", c.Mode(), ErrUnknownMode)
	}
}
