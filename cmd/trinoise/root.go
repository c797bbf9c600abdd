// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trinoise/segment"
	"github.com/katalvlaran/trinoise/tri"
)

// app carries the resolved configuration and logger into every command.
type app struct {
	configPath string
	flags      Config
	cfg        Config
	logger     *slog.Logger
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	a := &app{flags: defaultConfig()}

	root := &cobra.Command{
		Use:           "trinoise",
		Short:         "Evaluate the three-valued trinoise sequence",
		Long:          "trinoise maps every natural number to 0, N-2 or N-1 from the equal-depth\nneighborhoods of base-N digit arrays, periodically with period N^N.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.IntVarP(&a.flags.Base, "base", "b", a.flags.Base, "base N (2..15)")
	pf.StringVarP(&a.flags.Format, "format", "o", a.flags.Format, "output format: text, yaml or json")
	pf.BoolVar(&a.flags.Table, "table", a.flags.Table, "answer from a precomputed period table")
	pf.IntVar(&a.flags.Workers, "workers", a.flags.Workers, "table build goroutines (0 = GOMAXPROCS)")
	pf.Uint64Var(&a.flags.MaxPeriod, "max-period", a.flags.MaxPeriod, "largest period a table may hold (0 = default)")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "debug, info, warn or error")

	root.AddCommand(
		a.triCmd(),
		a.depthCmd(),
		a.neighborhoodCmd(),
		a.sequenceCmd(),
		a.frequenciesCmd(),
		a.verifyCmd(),
	)

	return root
}

// load resolves defaults, the config file and explicitly set flags, in that
// order, then validates the result and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg := defaultConfig()
	if a.configPath != "" {
		if err := loadConfigFile(a.configPath, &cfg); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.Base = a.flags.Base
	}
	if flags.Changed("format") {
		cfg.Format = a.flags.Format
	}
	if flags.Changed("table") {
		cfg.Table = a.flags.Table
	}
	if flags.Changed("workers") {
		cfg.Workers = a.flags.Workers
	}
	if flags.Changed("max-period") {
		cfg.MaxPeriod = a.flags.MaxPeriod
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.logLevel()}))
	a.logger.Debug("configuration resolved",
		"base", cfg.Base,
		"format", cfg.Format,
		"table", cfg.Table,
		"workers", cfg.Workers,
		"config", a.configPath,
	)

	return nil
}

// buildOptions translates the configuration into segment.Build options.
func (a *app) buildOptions() []segment.Option {
	opts := []segment.Option{
		segment.WithWorkers(a.cfg.Workers),
		segment.WithLogger(a.logger),
	}
	if a.cfg.MaxPeriod > 0 {
		opts = append(opts, segment.WithMaxPeriod(a.cfg.MaxPeriod))
	}

	return opts
}

// buildTable builds the period table of base.
func (a *app) buildTable(ctx context.Context, base int) (*segment.Table, error) {
	a.logger.Info("building period table", "base", base)

	return segment.Build(ctx, base, a.buildOptions()...)
}

// generator returns the configured generator for the current base.
func (a *app) generator(ctx context.Context) (*tri.Generator, error) {
	if !a.cfg.Table {
		return tri.New(a.cfg.Base)
	}
	tbl, err := a.buildTable(ctx, a.cfg.Base)
	if err != nil {
		return nil, err
	}

	return tri.New(a.cfg.Base, tri.WithTable(tbl))
}
