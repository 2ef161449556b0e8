// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rcmb/search"
	"github.com/katalvlaran/rcmb/values"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// dividerFlags are the flag values of the d command.
type dividerFlags struct {
	targets   string
	series    string
	seriesMin siValue
	seriesMax siValue
	elemsMin  int
	elemsMax  int
	totalMin  siValue
	totalMax  siValue
	tol       float64
	tolMin    float64
	tolMax    float64
	topology  string
	maxDepth  int
	format    string
	jobs      int
}

func (a *app) dividerCmd() *cobra.Command {
	var f dividerFlags
	cmd := &cobra.Command{
		Use:   "d",
		Short: "Find resistor dividers approximating a target ratio lower/(upper+lower)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolveDivider(cmd, &f)

			return a.runDivider(cmd, &f)
		},
	}

	def := a.cfg.Divider
	f.seriesMin, f.seriesMax = siValue(def.SeriesMin), siValue(def.SeriesMax)
	f.totalMin, f.totalMax = siValue(def.TotalMin), siValue(def.TotalMax)

	fs := cmd.Flags()
	fs.StringVarP(&f.targets, "target", "t", "", "comma-separated target ratios in (0, 1)")
	fs.StringVarP(&f.series, "series", "s", def.Series, "series name or comma-separated value list")
	fs.Var(&f.seriesMin, "series-min", "smallest catalog value")
	fs.Var(&f.seriesMax, "series-max", "largest catalog value")
	fs.IntVar(&f.elemsMin, "num-elems-min", def.NumElemsMin, "fewest elements in both legs together")
	fs.IntVarP(&f.elemsMax, "num-elems-max", "n", def.NumElemsMax, "most elements in both legs together")
	fs.Var(&f.totalMin, "total-min", "smallest upper+lower resistance")
	fs.Var(&f.totalMax, "total-max", "largest upper+lower resistance")
	fs.Float64Var(&f.tol, "target-tol", def.TolMax, "symmetric ratio tolerance in percent")
	fs.Float64Var(&f.tolMin, "target-tol-min", def.TolMin, "lower ratio tolerance in percent (negative)")
	fs.Float64Var(&f.tolMax, "target-tol-max", def.TolMax, "upper ratio tolerance in percent")
	fs.StringVar(&f.topology, "topology", def.Topology, "outermost connection of each leg: series, parallel or any")
	fs.IntVar(&f.maxDepth, "max-depth", def.MaxDepth, "deepest topology nesting considered")
	fs.StringVarP(&f.format, "format", "f", a.cfg.Format, "output format: text or json")
	fs.IntVarP(&f.jobs, "jobs", "j", a.cfg.Jobs, "targets searched concurrently")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// resolveDivider fills every flag the user left unset from the loaded config.
func (a *app) resolveDivider(cmd *cobra.Command, f *dividerFlags) {
	fs, def := cmd.Flags(), a.cfg.Divider
	fallback(fs, "series", &f.series, def.Series)
	fallback(fs, "series-min", &f.seriesMin, siValue(def.SeriesMin))
	fallback(fs, "series-max", &f.seriesMax, siValue(def.SeriesMax))
	fallback(fs, "num-elems-min", &f.elemsMin, def.NumElemsMin)
	fallback(fs, "num-elems-max", &f.elemsMax, def.NumElemsMax)
	fallback(fs, "total-min", &f.totalMin, siValue(def.TotalMin))
	fallback(fs, "total-max", &f.totalMax, siValue(def.TotalMax))
	fallback(fs, "topology", &f.topology, def.Topology)
	fallback(fs, "max-depth", &f.maxDepth, def.MaxDepth)
	fallback(fs, "format", &f.format, a.cfg.Format)
	fallback(fs, "jobs", &f.jobs, a.cfg.Jobs)

	tolMin, tolMax := def.TolMin, def.TolMax
	if fs.Changed("target-tol") {
		tolMin, tolMax = -f.tol, f.tol
	}
	fallback(fs, "target-tol-min", &f.tolMin, tolMin)
	fallback(fs, "target-tol-max", &f.tolMax, tolMax)
}

func (a *app) runDivider(cmd *cobra.Command, f *dividerFlags) error {
	targets, err := values.ParseList(f.targets)
	if err != nil {
		return fmt.Errorf("--target: %w", err)
	}
	r, err := newRenderer(cmd.OutOrStdout(), f.format)
	if err != nil {
		return err
	}
	opts, err := a.searchOptions(f.topology, f.maxDepth)
	if err != nil {
		return err
	}
	list, err := values.Expand(strings.TrimSpace(f.series), float64(f.seriesMin), float64(f.seriesMax))
	if err != nil {
		return err
	}
	cat, err := values.NewCatalog(list)
	if err != nil {
		return err
	}

	results := make([][]*search.DoubleCombination, len(targets))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, f.jobs))
	for i, ratio := range targets {
		g.Go(func() error {
			best, err := search.Dividers(ctx, search.DividerQuery{
				Catalog:     cat,
				MinElements: f.elemsMin,
				MaxElements: f.elemsMax,
				TotalMin:    float64(f.totalMin),
				TotalMax:    float64(f.totalMax),
				Ratio:       ratio,
				RatioMin:    min(1, max(0, ratio*(1+f.tolMin/100))),
				RatioMax:    min(1, max(0, ratio*(1+f.tolMax/100))),
			}, opts...)
			if err != nil {
				return fmt.Errorf("target %g: %w", ratio, err)
			}
			results[i] = best
			a.logger.Info("rcmb: divider search done", "ratio", ratio, "results", len(best))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return r.dividers(targets, results)
}
