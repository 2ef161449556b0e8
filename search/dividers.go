// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"log/slog"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/rcmb/topology"
	"github.com/katalvlaran/rcmb/values"
)

// Dividers returns the resistor divider pairs whose ratio best approximates
// q.Ratio.
//
// Lower legs are enumerated by increasing element count inside
// [TotalMin·RatioMin, TotalMax·RatioMax]. For each lower value the exact
// upper value that would hit q.Ratio is derived and searched with
// Combinations using the remaining element budget; lower values that agree to
// within 1e-9 share one upper search. Once an exact ratio is found the budget
// shrinks so no later candidate can use more elements. The tie policy matches
// Combinations, keyed on the total element count.
//
// Errors:
//   - ErrSearchSpaceTooLarge if q.MaxElements > MaxElements (checked first).
//   - ErrParameterOutOfRange, ErrParameterRangeReversal for invalid queries.
//   - any error of an upper-leg search, which aborts the enumeration.
//   - ErrBrokenTopology, ErrInaccurateResult, ErrNegativeValue from verification.
//   - ctx.Err() if ctx is done.
func Dividers(ctx context.Context, q DividerQuery, opts ...Option) ([]*DoubleCombination, error) {
	o := gatherOptions(opts)
	ctx, span := tracer.Start(ctx, "search.Dividers", trace.WithAttributes(
		attribute.Int("min_elements", q.MinElements),
		attribute.Int("max_elements", q.MaxElements),
		attribute.Float64("ratio", q.Ratio),
		attribute.Float64("total_min", q.TotalMin),
		attribute.Float64("total_max", q.TotalMax),
	))
	defer span.End()

	start := time.Now()
	best, err := dividers(ctx, q, &o)
	observe("dividers", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("results", len(best)))
	o.Logger.Debug("divider search done",
		slog.Float64("ratio", q.Ratio),
		slog.Int("results", len(best)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return best, nil
}

// dividerSearch holds the incumbent and memo of one Dividers call.
type dividerSearch struct {
	q *DividerQuery
	o *Options

	upperMin float64
	upperMax float64

	bestErr   float64
	bestElems int
	best      []*DoubleCombination

	// memo maps a lower-leg value key to the result built for it.
	memo map[uint32]*DoubleCombination
}

func dividers(ctx context.Context, q DividerQuery, o *Options) ([]*DoubleCombination, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	s := &dividerSearch{
		q:         &q,
		o:         o,
		upperMin:  q.TotalMin * (1 - q.RatioMax),
		upperMax:  q.TotalMax * (1 - q.RatioMin),
		bestErr:   math.Inf(1),
		bestElems: math.MaxInt,
		memo:      make(map[uint32]*DoubleCombination),
	}
	lowerMin := q.TotalMin * q.RatioMin
	lowerMax := q.TotalMax * q.RatioMax

	tbl := o.Table
	for lowers := 1; lowers < q.MaxElements; lowers++ {
		for _, parallel := range orientations {
			if lowers == 1 && parallel {
				continue
			}
			for _, id := range tbl.Topologies(lowers, parallel) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				budget := q.MaxElements - lowers
				if s.bestErr < ratioEps {
					budget = s.bestElems - lowers
					if budget <= 0 {
						break
					}
				}
				if !o.admits(tbl.Node(id)) {
					continue
				}
				if err := s.enumerate(ctx, id, lowers, budget, lowerMin, lowerMax); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, d := range s.best {
		d.Uppers = Normalized(d.Uppers)
		d.Lowers = Normalized(d.Lowers)
		if err := d.Verify(); err != nil {
			return nil, err
		}
	}

	return s.best, nil
}

// enumerate walks one lower-leg topology. The first upper-search failure
// stops the walk and is returned.
func (s *dividerSearch) enumerate(ctx context.Context, id topology.ID, lowers, budget int, lowerMin, lowerMax float64) error {
	e := newEnumerator(Resistor, s.q.Catalog, s.o.Table, id, lowerMin, lowerMax, noTarget)
	defer e.close()
	for lower := range e.assignments() {
		if err := s.consider(ctx, e, lower, lowers, budget); err != nil {
			return err
		}
	}

	return nil
}

// consider evaluates one lower-leg value.
func (s *dividerSearch) consider(ctx context.Context, e *enumerator, lower float64, lowers, budget int) error {
	q := s.q
	estUpper := lower/q.Ratio - lower
	if total := lower + estUpper; total < q.TotalMin-ratioEps || q.TotalMax+ratioEps < total {
		return nil
	}

	key := values.Key(lower)
	if m, ok := s.memo[key]; ok && sameValue(m.Lower(), lower) {
		memoLowers := m.Lowers[0].NumLeaves()
		if lowers <= memoLowers && m.NumElements() <= s.bestElems {
			m.Lowers = append(m.Lowers, e.bake())
		}
		return nil
	}

	minUpper := max(1, q.MinElements-lowers)
	if minUpper > budget {
		return nil
	}
	uppers, err := combinations(ctx, Query{
		Type:        Resistor,
		Catalog:     q.Catalog,
		MinElements: minUpper,
		MaxElements: budget,
		Target:      estUpper,
		TargetMin:   s.upperMin,
		TargetMax:   s.upperMax,
	}, s.o)
	if err != nil {
		return err
	}
	if len(uppers) == 0 {
		return nil
	}

	upper := uppers[0].Value()
	total := lower + upper
	ratio := lower / total
	if ratio < q.RatioMin-ratioEps || q.RatioMax+ratioEps < ratio {
		return nil
	}
	if total < q.TotalMin-ratioEps || q.TotalMax+ratioEps < total {
		return nil
	}

	n := lowers + uppers[0].NumLeaves()
	dev := math.Abs(ratio - q.Ratio)
	switch {
	case dev-ratioEps > s.bestErr:
		return nil
	case dev+ratioEps >= s.bestErr:
		if n > s.bestElems {
			return nil
		}
		if n < s.bestElems {
			s.best = s.best[:0]
		}
	default:
		s.best = s.best[:0]
	}

	d := &DoubleCombination{
		Ratio:  ratio,
		Uppers: uppers,
		Lowers: []*Combination{e.bake()},
	}
	s.memo[key] = d
	s.best = append(s.best, d)
	s.bestErr = dev
	s.bestElems = n

	return nil
}

// sameValue reports whether a and b agree within relTol of a.
func sameValue(a, b float64) bool {
	return math.Abs(a-b) <= a*relTol
}
