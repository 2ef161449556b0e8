// Package search_test provides shared fixtures and brute-force oracles.
package search_test

import (
	"math"
	"slices"
	"sort"

	"github.com/katalvlaran/rcmb/search"
	"github.com/katalvlaran/rcmb/values"
)

// e3Decades is the E3 series from 100 to 1M.
var e3Decades = []float64{
	100, 220, 470, 1000, 2200, 4700, 10000, 22000, 47000,
	100000, 220000, 470000, 1000000,
}

func e3Catalog() *values.Catalog { return values.MustCatalog(e3Decades) }

// achievable returns, per leaf count 1..n, every value a series/parallel
// network of that many catalog elements can take. Any such network splits
// into two sub-networks joined in series or parallel, so each level is the
// pairwise closure of two smaller ones.
func achievable(cat []float64, n int) [][]float64 {
	levels := make([][]float64, n+1)
	levels[1] = slices.Sorted(slices.Values(cat))
	for k := 2; k <= n; k++ {
		var out []float64
		for i := 1; i <= k/2; i++ {
			for _, a := range levels[i] {
				for _, b := range levels[k-i] {
					out = append(out, a+b, a*b/(a+b))
				}
			}
		}
		slices.Sort(out)
		levels[k] = slices.Compact(out)
	}

	return levels
}

// bruteForceMinError returns the smallest |v − target| over every network of
// up to n elements. The last level is not materialized: for each split the
// exact partner value is computed and looked up.
func bruteForceMinError(cat []float64, n int, target float64) float64 {
	best := math.Inf(1)
	if n == 1 {
		for _, v := range cat {
			best = math.Min(best, math.Abs(v-target))
		}
		return best
	}

	levels := achievable(cat, n-1)
	for k := 1; k < n; k++ {
		for _, v := range levels[k] {
			best = math.Min(best, math.Abs(v-target))
		}
	}
	for i := 1; i <= n/2; i++ {
		large := levels[n-i]
		for _, a := range levels[i] {
			series := func(b float64) float64 { return a + b }
			best = math.Min(best, nearestError(large, target-a, series, target))

			parallel := func(b float64) float64 { return a * b / (a + b) }
			if a > target {
				best = math.Min(best, nearestError(large, a*target/(a-target), parallel, target))
			} else {
				// A parallel join stays below a, so the largest partner is closest.
				best = math.Min(best, math.Abs(parallel(large[len(large)-1])-target))
			}
		}
	}

	return best
}

// nearestError evaluates combine on the neighbors of want in sorted and
// returns the smallest error to target. combine is monotonic in b, so the
// optimum is at one of the two neighbors.
func nearestError(sorted []float64, want float64, combine func(float64) float64, target float64) float64 {
	i := sort.SearchFloat64s(sorted, want)
	best := math.Inf(1)
	for _, j := range []int{i - 1, i} {
		if 0 <= j && j < len(sorted) {
			best = math.Min(best, math.Abs(combine(sorted[j])-target))
		}
	}

	return best
}

// minError returns the smallest |value − target| in combs, +Inf if empty.
func minError(combs []*search.Combination, target float64) float64 {
	best := math.Inf(1)
	for _, c := range combs {
		best = math.Min(best, math.Abs(c.Value()-target))
	}

	return best
}

// recompute evaluates c bottom-up without using stored composite values.
func recompute(c *search.Combination) float64 {
	if c.IsLeaf() {
		return c.Value()
	}
	inv := c.Type().IsReciprocal(c.Parallel())
	acc := 0.0
	for _, child := range c.Children() {
		v := recompute(child)
		if inv {
			acc += 1 / v
		} else {
			acc += v
		}
	}
	if inv {
		return 1 / acc
	}

	return acc
}
