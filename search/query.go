// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rcmb/values"
)

// Query describes one combination search.
type Query struct {
	Type    ComponentType
	Catalog *values.Catalog

	// MinElements and MaxElements bound the leaf count scanned, inclusive.
	MinElements int
	MaxElements int

	// Target is the value to approximate; only results inside
	// [TargetMin, TargetMax] are reported.
	Target    float64
	TargetMin float64
	TargetMax float64
}

// DividerQuery describes one voltage-divider search. Both legs are resistor
// networks drawn from the same catalog.
type DividerQuery struct {
	Catalog *values.Catalog

	// MinElements and MaxElements bound the total leaf count of both legs.
	MinElements int
	MaxElements int

	// TotalMin and TotalMax bound upper + lower.
	TotalMin float64
	TotalMax float64

	// Ratio is lower / (upper + lower); only results inside
	// [RatioMin, RatioMax] are reported.
	Ratio    float64
	RatioMin float64
	RatioMax float64
}

// validate checks q without side effects. The element ceiling is checked first
// so an oversized request never reaches any other precondition.
func (q *Query) validate() error {
	if q.MaxElements > MaxElements {
		return fmt.Errorf("max elements %d > %d: %w", q.MaxElements, MaxElements, ErrSearchSpaceTooLarge)
	}
	switch {
	case !q.Type.valid():
		return fmt.Errorf("component type %v: %w", q.Type, ErrParameterOutOfRange)
	case q.Catalog == nil:
		return fmt.Errorf("nil catalog: %w", ErrParameterOutOfRange)
	case q.MinElements < 1:
		return fmt.Errorf("min elements %d: %w", q.MinElements, ErrParameterOutOfRange)
	case q.MinElements > q.MaxElements:
		return fmt.Errorf("elements [%d, %d]: %w", q.MinElements, q.MaxElements, ErrParameterRangeReversal)
	case !values.IsValid(q.Target):
		return fmt.Errorf("target %g: %w", q.Target, ErrParameterOutOfRange)
	case !nonNegative(q.TargetMin) || math.IsNaN(q.TargetMax):
		return fmt.Errorf("target range [%g, %g]: %w", q.TargetMin, q.TargetMax, ErrParameterOutOfRange)
	case q.TargetMin > q.TargetMax:
		return fmt.Errorf("target range [%g, %g]: %w", q.TargetMin, q.TargetMax, ErrParameterRangeReversal)
	}

	return nil
}

// validate checks q without side effects; see Query.validate.
func (q *DividerQuery) validate() error {
	if q.MaxElements > MaxElements {
		return fmt.Errorf("max elements %d > %d: %w", q.MaxElements, MaxElements, ErrSearchSpaceTooLarge)
	}
	switch {
	case q.Catalog == nil:
		return fmt.Errorf("nil catalog: %w", ErrParameterOutOfRange)
	case q.MinElements < 1 || q.MaxElements < 2:
		return fmt.Errorf("elements [%d, %d]: %w", q.MinElements, q.MaxElements, ErrParameterOutOfRange)
	case q.MinElements > q.MaxElements:
		return fmt.Errorf("elements [%d, %d]: %w", q.MinElements, q.MaxElements, ErrParameterRangeReversal)
	case !values.IsValid(q.TotalMin) || !values.IsValid(q.TotalMax):
		return fmt.Errorf("total range [%g, %g]: %w", q.TotalMin, q.TotalMax, ErrParameterOutOfRange)
	case q.TotalMin > q.TotalMax:
		return fmt.Errorf("total range [%g, %g]: %w", q.TotalMin, q.TotalMax, ErrParameterRangeReversal)
	case !(0 < q.Ratio && q.Ratio < 1):
		return fmt.Errorf("ratio %g: %w", q.Ratio, ErrParameterOutOfRange)
	case !unit(q.RatioMin) || !unit(q.RatioMax):
		return fmt.Errorf("ratio range [%g, %g]: %w", q.RatioMin, q.RatioMax, ErrParameterOutOfRange)
	case q.RatioMin > q.RatioMax:
		return fmt.Errorf("ratio range [%g, %g]: %w", q.RatioMin, q.RatioMax, ErrParameterRangeReversal)
	}

	return nil
}

func nonNegative(v float64) bool { return v >= 0 && !math.IsNaN(v) }

func unit(v float64) bool { return 0 <= v && v <= 1 }
