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

// combineFlags are the flag values of the r and c commands.
type combineFlags struct {
	targets   string
	series    string
	seriesMin siValue
	seriesMax siValue
	elemsMin  int
	elemsMax  int
	tol       float64
	tolMin    float64
	tolMax    float64
	topology  string
	maxDepth  int
	format    string
	jobs      int
}

func (a *app) combineCmd(typ search.ComponentType) *cobra.Command {
	var f combineFlags
	use, unit := "r", "resistance"
	if typ == search.Capacitor {
		use, unit = "c", "capacitance"
	}
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Find %s networks approximating a target %s", typ, unit),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.resolveCombine(cmd, &f)

			return a.runCombine(cmd, typ, &f)
		},
	}

	def := a.cfg.Combine
	fs := cmd.Flags()
	fs.StringVarP(&f.targets, "target", "t", "", "comma-separated target values (SI suffixes allowed)")
	fs.StringVarP(&f.series, "series", "s", def.Series, "series name or comma-separated value list")
	fs.Var(&f.seriesMin, "series-min", "smallest catalog value (default target/1000)")
	fs.Var(&f.seriesMax, "series-max", "largest catalog value (default target*1000)")
	fs.IntVar(&f.elemsMin, "num-elems-min", def.NumElemsMin, "fewest elements per network")
	fs.IntVarP(&f.elemsMax, "num-elems-max", "n", def.NumElemsMax, "most elements per network")
	fs.Float64Var(&f.tol, "target-tol", def.TolMax, "symmetric tolerance in percent")
	fs.Float64Var(&f.tolMin, "target-tol-min", def.TolMin, "lower tolerance in percent (negative)")
	fs.Float64Var(&f.tolMax, "target-tol-max", def.TolMax, "upper tolerance in percent")
	fs.StringVar(&f.topology, "topology", def.Topology, "outermost connection: series, parallel or any")
	fs.IntVar(&f.maxDepth, "max-depth", def.MaxDepth, "deepest topology nesting considered")
	fs.StringVarP(&f.format, "format", "f", a.cfg.Format, "output format: text or json")
	fs.IntVarP(&f.jobs, "jobs", "j", a.cfg.Jobs, "targets searched concurrently")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// resolveCombine fills every flag the user left unset from the loaded config.
func (a *app) resolveCombine(cmd *cobra.Command, f *combineFlags) {
	fs, def := cmd.Flags(), a.cfg.Combine
	fallback(fs, "series", &f.series, def.Series)
	fallback(fs, "series-min", &f.seriesMin, siValue(def.SeriesMin))
	fallback(fs, "series-max", &f.seriesMax, siValue(def.SeriesMax))
	fallback(fs, "num-elems-min", &f.elemsMin, def.NumElemsMin)
	fallback(fs, "num-elems-max", &f.elemsMax, def.NumElemsMax)
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

func (a *app) runCombine(cmd *cobra.Command, typ search.ComponentType, f *combineFlags) error {
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

	results := make([][]*search.Combination, len(targets))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(1, f.jobs))
	for i, target := range targets {
		g.Go(func() error {
			q, err := combineQuery(typ, target, f)
			if err != nil {
				return err
			}
			best, err := search.Combinations(ctx, q, opts...)
			if err != nil {
				return fmt.Errorf("target %g: %w", target, err)
			}
			results[i] = best
			a.logger.Info("rcmb: search done", "type", typ, "target", target, "results", len(best))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return r.combinations(targets, results)
}

// combineQuery builds the catalog and tolerance window for one target.
func combineQuery(typ search.ComponentType, target float64, f *combineFlags) (search.Query, error) {
	lo, hi := float64(f.seriesMin), float64(f.seriesMax)
	if lo <= 0 {
		lo = target / 1000
	}
	if hi <= 0 {
		hi = target * 1000
	}
	list, err := values.Expand(strings.TrimSpace(f.series), lo, hi)
	if err != nil {
		return search.Query{}, err
	}
	cat, err := values.NewCatalog(list)
	if err != nil {
		return search.Query{}, err
	}

	return search.Query{
		Type:        typ,
		Catalog:     cat,
		MinElements: f.elemsMin,
		MaxElements: f.elemsMax,
		Target:      target,
		TargetMin:   max(0, target*(1+f.tolMin/100)),
		TargetMax:   target * (1 + f.tolMax/100),
	}, nil
}
