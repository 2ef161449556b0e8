// SPDX-License-Identifier: MIT

// Package values holds the admissible element values a combination search may
// draw from, together with the helpers that produce and present them.
//
// What lives here:
//
//   - Catalog: a sorted, duplicate-free list of positive finite values with
//     range and nearest-value queries. Built once, read-only afterwards.
//   - Named standard series (E1 … E192 and the E24 unions) and their expansion
//     across decades into concrete component values.
//   - Parsing of SI-prefixed value lists ("1k,4.7k,22M").
//   - Formatting: engineering notation for machine-readable output and SI
//     prefixes for humans.
//   - Key: a 7-significant-digit key used to memoize results by value.
//
// Usage:
//
//	raw, err := values.Expand("e12", 100, 1e6)
//	if err != nil {
//		return err
//	}
//	cat, err := values.NewCatalog(raw)
//	if err != nil {
//		return err // errors.Is(err, values.ErrInvalidValueList)
//	}
//	lo := cat.Range(1e3, 1e4) // every value in [1k, 10k]
//	n := cat.Nearest(5e3)    // 4.7k
//
// Errors:
//
//	ErrInvalidValueList - non-positive, non-finite or duplicate value.
//	ErrUnknownSeries    - series name not recognized and not a value list.
//	ErrEmptyRange       - expansion produced no values inside [min, max].
//	ErrBadValue         - a value literal could not be parsed.
package values
