// SPDX-License-Identifier: MIT
// Package: trinoise/segment
//
// options.go — functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     Build itself never panics.
//   • Defaults are deterministic: workers = GOMAXPROCS, maxPeriod = 1<<25,
//     logger discards. maxPeriod never exceeds HardMaxPeriod.

package segment

import (
	"log/slog"
	"math"
	"runtime"
)

// DefaultMaxPeriod bounds the table size (one byte per index) unless
// overridden with WithMaxPeriod. It admits every base up to 8.
const DefaultMaxPeriod uint64 = 1 << 25

// HardMaxPeriod is the largest period Build ever allocates, whatever
// WithMaxPeriod asks for. It admits every base up to 10.
const HardMaxPeriod uint64 = 1 << 34

// cancelCheckMask sets how often build workers poll their context.
const cancelCheckMask = 1<<16 - 1

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	workers   int
	maxPeriod uint64
	logger    *slog.Logger
}

// WithWorkers sets the number of goroutines filling the depth table.
// Zero selects runtime.GOMAXPROCS(0). Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("segment: WithWorkers(n<0)")
	}
	return func(c *buildConfig) {
		c.workers = n
	}
}

// WithMaxPeriod raises or lowers the largest period Build accepts.
// Values above HardMaxPeriod (or the platform's int range) are clamped.
// Panics on zero.
func WithMaxPeriod(p uint64) Option {
	if p == 0 {
		panic("segment: WithMaxPeriod(0)")
	}
	return func(c *buildConfig) {
		c.maxPeriod = p
	}
}

// WithLogger reports build progress at debug level. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("segment: WithLogger(nil)")
	}
	return func(c *buildConfig) {
		c.logger = l
	}
}

// newBuildConfig applies opts in order over the defaults.
func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		maxPeriod: DefaultMaxPeriod,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers == 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	// one []uint8 must hold the whole period
	cfg.maxPeriod = min(cfg.maxPeriod, HardMaxPeriod, uint64(math.MaxInt))

	return cfg
}
