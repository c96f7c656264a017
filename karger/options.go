// SPDX-License-Identifier: MIT

package karger

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Option configures an algorithm at construction.
type Option func(*config)

type config struct {
	rng     *rand.Rand
	seed    int64
	workers int
	logger  zerolog.Logger
	onStats func(Stats)
}

func defaultConfig() config {
	return config{workers: 1, logger: zerolog.Nop()}
}

func newConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(cfg.seed)
	}

	return cfg
}

// WithSeed seeds the algorithm's generator. Seed 0 selects a fixed default.
// Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithRand hands the algorithm a caller-owned generator. The generator must
// not be used concurrently by anyone else while the algorithm runs.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithWorkers sets how many goroutines IterateN (and the entry points built on
// it) may use. The default is 1.
func WithWorkers(k int) Option {
	return func(c *config) { c.workers = k }
}

// WithLogger sets the logger used for verbose reports and debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithOnStats registers a hook receiving the Stats of every verbose run.
func WithOnStats(fn func(Stats)) Option {
	return func(c *config) { c.onStats = fn }
}
