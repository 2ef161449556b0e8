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
)

// orientations is the root orientation order tried for each element count.
var orientations = [2]bool{false, true}

// Combinations returns the networks that best approximate q.Target.
//
// Element counts are scanned upward from q.MinElements; within a count both
// root orientations and every topology are enumerated, each seeded with the
// tightest bounds found so far. A candidate strictly closer to the target
// replaces the best set; one tied within target/1e9 joins it unless it needs
// more elements. The scan stops once a candidate within tolerance of the
// target is found. Survivors are normalized and verified.
//
// Errors:
//   - ErrSearchSpaceTooLarge if q.MaxElements > MaxElements (checked first).
//   - ErrParameterOutOfRange, ErrParameterRangeReversal for invalid queries.
//   - ErrInaccurateResult, ErrNegativeValue from verification.
//   - ctx.Err() if ctx is done; checked between topologies.
//
// An empty result with a nil error means nothing fell inside
// [q.TargetMin, q.TargetMax].
func Combinations(ctx context.Context, q Query, opts ...Option) ([]*Combination, error) {
	o := gatherOptions(opts)
	ctx, span := tracer.Start(ctx, "search.Combinations", trace.WithAttributes(
		attribute.String("type", q.Type.String()),
		attribute.Int("min_elements", q.MinElements),
		attribute.Int("max_elements", q.MaxElements),
		attribute.Float64("target", q.Target),
	))
	defer span.End()

	start := time.Now()
	best, err := combinations(ctx, q, &o)
	observe("combinations", start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("results", len(best)))
	o.Logger.Debug("combination search done",
		slog.String("type", q.Type.String()),
		slog.Float64("target", q.Target),
		slog.Int("results", len(best)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return best, nil
}

// combinationSearch holds the incumbent of one Combinations call.
type combinationSearch struct {
	q   *Query
	o   *Options
	eps float64

	bestMin   float64
	bestMax   float64
	bestErr   float64
	bestElems int
	best      []*Combination
}

func combinations(ctx context.Context, q Query, o *Options) ([]*Combination, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	s := &combinationSearch{
		q:         &q,
		o:         o,
		eps:       q.Target * relTol,
		bestMin:   q.TargetMin,
		bestMax:   q.TargetMax,
		bestErr:   math.Inf(1),
		bestElems: math.MaxInt,
	}

	tbl := o.Table
	for n := q.MinElements; n <= q.MaxElements; n++ {
		for _, parallel := range orientations {
			if n == 1 && parallel {
				continue
			}
			for _, id := range tbl.Topologies(n, parallel) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if !o.admits(tbl.Node(id)) {
					continue
				}
				e := newEnumerator(q.Type, q.Catalog, tbl, id, s.bestMin, s.bestMax, q.Target)
				for v := range e.assignments() {
					s.consider(e, v, n)
				}
				e.close()
			}
		}
		if s.bestErr < s.eps {
			break
		}
	}

	best := Normalized(s.best)
	for _, c := range best {
		if err := c.Verify(); err != nil {
			return nil, err
		}
	}

	return best, nil
}

// consider applies the improvement and tie policy to one root value.
func (s *combinationSearch) consider(e *enumerator, v float64, n int) {
	q, eps := s.q, s.eps
	if v < q.TargetMin-eps || q.TargetMax+eps < v {
		return
	}

	err := math.Abs(v - q.Target)
	switch {
	case err-eps > s.bestErr:
		return
	case err+eps >= s.bestErr:
		if n > s.bestElems {
			return
		}
		if n < s.bestElems {
			s.best = s.best[:0]
		}
	default:
		s.best = s.best[:0]
	}
	s.best = append(s.best, e.bake())
	s.bestErr = err
	s.bestElems = n

	// Narrow the window toward the target for the remaining topologies.
	if v < q.Target {
		if s.bestMin-eps < v {
			s.bestMin = v
		}
	} else if s.bestMax+eps > v {
		s.bestMax = v
	}
}
