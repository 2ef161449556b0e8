// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/rcmb/config"
	"github.com/katalvlaran/rcmb/search"
	"github.com/katalvlaran/rcmb/topology"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	table  *topology.Table

	configPath string
	logLevel   string
	trace      bool
	meta       bool

	shutdown func(context.Context) error
}

func newApp() *app {
	return &app{cfg: config.Default(), logger: discardLogger()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rcmb",
		Short:         "Find resistor/capacitor combinations and voltage dividers from standard values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.meta {
				return a.printMeta(cmd.OutOrStdout())
			}

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "defaults file (.yaml, .yml or .toml)")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.BoolVar(&a.trace, "trace", false, "write search spans to stderr")
	pf.BoolVar(&a.meta, "meta", false, "print topology and search-state diagnostics after the run")

	root.AddCommand(
		a.combineCmd(search.Resistor),
		a.combineCmd(search.Capacitor),
		a.dividerCmd(),
		a.seriesCmd(),
	)

	return root
}

// setup loads the defaults file, then builds the logger, the topology table
// and, with --trace, the tracer provider.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	level := a.cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	a.logger = logger
	a.table = topology.NewTable(topology.WithLogger(logger))

	if a.trace {
		tp, err := newTracerProvider(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("tracing: %w", err)
		}
		otel.SetTracerProvider(tp)
		a.shutdown = tp.Shutdown
	}
	a.logger.Debug("rcmb: setup done", "command", cmd.Name(), "config", a.configPath, "trace", a.trace)

	return nil
}

// close flushes pending spans.
func (a *app) close(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	err := a.shutdown(ctx)
	a.shutdown = nil

	return err
}

// searchOptions translates shared flag values into search options.
func (a *app) searchOptions(topo string, maxDepth int) ([]search.Option, error) {
	constraint, err := search.ParseTopologyConstraint(topo)
	if err != nil {
		return nil, err
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("max depth %d: %w", maxDepth, search.ErrParameterOutOfRange)
	}

	return []search.Option{
		search.WithTopologyConstraint(constraint),
		search.WithMaxDepth(maxDepth),
		search.WithTable(a.table),
		search.WithLogger(a.logger),
	}, nil
}
