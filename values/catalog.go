// SPDX-License-Identifier: MIT

package values

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Catalog is an immutable, strictly increasing list of admissible element values.
//
// Invariants:
//   - every value v satisfies 0 < v < +Inf;
//   - values are sorted ascending with no duplicates;
//   - the backing slice is never mutated after NewCatalog returns.
//
// A Catalog is safe for concurrent readers.
type Catalog struct {
	values []float64
}

// NewCatalog copies vals, sorts the copy and validates it.
//
// Errors:
//   - ErrInvalidValueList if vals is empty, or contains a non-positive,
//     NaN, infinite or duplicate value.
//
// Complexity: O(n log n).
func NewCatalog(vals []float64) (*Catalog, error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("empty list: %w", ErrInvalidValueList)
	}
	sorted := slices.Clone(vals)
	slices.Sort(sorted)

	prev := -1.0
	for _, v := range sorted {
		if !IsValid(v) {
			return nil, fmt.Errorf("value %g: %w", v, ErrInvalidValueList)
		}
		if v == prev {
			return nil, fmt.Errorf("duplicate value %g: %w", v, ErrInvalidValueList)
		}
		prev = v
	}

	return &Catalog{values: sorted}, nil
}

// MustCatalog is NewCatalog for static tables; it panics on invalid input.
func MustCatalog(vals []float64) *Catalog {
	c, err := NewCatalog(vals)
	if err != nil {
		panic(err)
	}

	return c
}

// IsValid reports whether v is usable as an element value (0 < v < +Inf).
func IsValid(v float64) bool {
	return v > 0 && !math.IsInf(v, 1) && !math.IsNaN(v)
}

// Len returns the number of values.
func (c *Catalog) Len() int { return len(c.values) }

// Values returns a copy of the sorted values.
func (c *Catalog) Values() []float64 { return slices.Clone(c.values) }

// Min returns the smallest value.
func (c *Catalog) Min() float64 { return c.values[0] }

// Max returns the largest value.
func (c *Catalog) Max() float64 { return c.values[len(c.values)-1] }

// Range returns the values v with min <= v <= max in ascending order.
// The result aliases the catalog storage and must not be modified.
// An inverted or empty window yields an empty slice.
//
// Complexity: O(log n).
func (c *Catalog) Range(min, max float64) []float64 {
	lo := sort.SearchFloat64s(c.values, min)
	hi := sort.Search(len(c.values), func(i int) bool { return c.values[i] > max })
	if hi <= lo {
		return nil
	}

	return c.values[lo:hi:hi]
}

// Nearest returns the value closest to target. On an exact tie between two
// neighbors the smaller value wins.
//
// Complexity: O(log n).
func (c *Catalog) Nearest(target float64) float64 {
	i := sort.SearchFloat64s(c.values, target)
	switch {
	case i == 0:
		return c.values[0]
	case i == len(c.values):
		return c.values[len(c.values)-1]
	}
	below, above := c.values[i-1], c.values[i]
	if above-target < target-below {
		return above
	}

	return below
}
