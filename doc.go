// Package rcmb finds networks of standard-value components that come as close
// as possible to a wanted value: series/parallel resistor or capacitor
// combinations for a target, and resistor voltage dividers for a target ratio.
//
// 🚀 What is rcmb?
//
//	A search library plus a small CLI that brings together:
//		• Standard series: E1 … E192 and the E24 unions, expanded across decades
//		• Topologies: every distinct series-parallel shape up to 15 elements
//		• Combination search: exhaustive, bound-pruned, fewest elements first
//		• Divider search: both legs solved together for a ratio and a total
//		• Output: SI text ("2.2k--1k") and JSON in engineering notation
//
// ✨ Why rcmb?
//
//   - Exact answers: every shape within the element budget is considered,
//     ties are all reported
//   - Safe by construction: results are re-verified before they are returned
//   - Shared work: topologies are generated once per process and reused
//     across concurrent searches
//
// Under the hood, everything is organized under these packages:
//
//	values/     Catalog, E-series tables, SI parsing and formatting
//	topology/   content-addressed table of series-parallel shapes
//	search/     Combinations, Dividers and their result types
//	config/     CLI defaults file (YAML or TOML)
//	cmd/rcmb    the command-line tool
//
// Quick example:
//
//	raw, _ := values.Expand("e12", 10, 1e6)
//	cat, _ := values.NewCatalog(raw)
//	best, err := search.Combinations(ctx, search.Query{
//		Type:        search.Resistor,
//		Catalog:     cat,
//		MinElements: 1,
//		MaxElements: 3,
//		Target:      3141,
//		TargetMin:   3000,
//		TargetMax:   3300,
//	})
//
// See the package docs of values, topology and search for details.
package rcmb
