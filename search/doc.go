// SPDX-License-Identifier: MIT

// Package search finds series/parallel networks of catalog values that best
// approximate a target value, and resistor pairs that best approximate a
// voltage-divider ratio.
//
// 🚀 What it does
//
//   - Combinations: for a resistor or capacitor Query, scan element counts
//     upward, enumerate every canonical topology of each count, and assign
//     catalog values to the leaves by branch-and-bound.
//   - Dividers: enumerate lower legs, derive the exact upper value each one
//     needs, and solve the upper leg with Combinations.
//
// ⚙️ How the branch-and-bound works
//
// Each topology is mirrored by a tree of search states. Leaves are assigned
// left to right. After each assignment the running sum (series resistors,
// parallel capacitors) or reciprocal sum (the other two cases) is folded into
// the ancestors, and the next unassigned sibling receives bounds implied by
// the parent's bounds and the partial value:
//
//	plain sum, partial S:       next.max = pmax − S; last sibling: next.min = pmin − S
//	reciprocal sum, partial P:  last sibling: next ∈ [P·pmin/(P−pmin), P·pmax/(P−pmax)]
//	                            other siblings: next.min = pmin
//
// Siblings on the rightmost spine also inherit the exact value that would hit
// the target, and only the nearest catalog value to it is tried. Adjacent
// siblings with the same shape are kept in non-increasing value order so each
// physical network is produced once.
//
// All comparisons use a relative tolerance of value/1e9, except divider ratios
// which use 1e-9.
//
// 🔒 Concurrency
//
// A search owns its state tree and is single-threaded. Concurrent searches may
// share one topology.Table. Cancellation is observed between topologies.
//
// 📊 Observability
//
// Searches emit an OpenTelemetry span each and update prometheus metrics
// (rcmb_searches_total, rcmb_search_duration_seconds, rcmb_search_states_live,
// rcmb_search_assignments_total). Debug summaries go to the Options logger.
//
// ❗ Errors
//
//   - ErrSearchSpaceTooLarge: element ceiling above MaxElements.
//   - ErrParameterOutOfRange, ErrParameterRangeReversal: invalid query.
//   - ErrInaccurateResult, ErrNegativeValue, ErrBrokenTopology: a result
//     failed verification. These are never expected and are always surfaced.
//
// Example:
//
//	cat, _ := values.NewCatalog([]float64{100, 220, 470, 1000, 2200, 4700})
//	best, err := search.Combinations(ctx, search.Query{
//		Type: search.Resistor, Catalog: cat,
//		MinElements: 1, MaxElements: 3,
//		Target: 3300, TargetMin: 1650, TargetMax: 4950,
//	})
package search
