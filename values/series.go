// SPDX-License-Identifier: MIT

package values

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Standard decade series, expressed as three significant digits (100 ≙ 1.00).
var (
	e1  = []float64{100}
	e3  = []float64{100, 220, 470}
	e6  = []float64{100, 150, 220, 330, 470, 680}
	e12 = []float64{100, 120, 150, 180, 220, 270, 330, 390, 470, 560, 680, 820}
	e24 = []float64{
		100, 110, 120, 130, 150, 160, 180, 200, 220, 240, 270, 300,
		330, 360, 390, 430, 470, 510, 560, 620, 680, 750, 820, 910,
	}
	e48 = []float64{
		100, 105, 110, 115, 121, 127, 133, 140, 147, 154, 162, 169,
		178, 187, 196, 205, 215, 226, 237, 249, 261, 274, 287, 301,
		316, 332, 348, 365, 383, 402, 422, 442, 464, 487, 511, 536,
		562, 590, 619, 649, 681, 715, 750, 787, 825, 866, 909, 953,
	}
	e96 = []float64{
		100, 102, 105, 107, 110, 113, 115, 118, 121, 124, 127, 130, 133, 137,
		140, 143, 147, 150, 154, 158, 162, 165, 169, 174, 178, 182, 187, 191,
		196, 200, 205, 210, 215, 221, 226, 232, 237, 243, 249, 255, 261, 267,
		274, 280, 287, 294, 301, 309, 316, 324, 332, 340, 348, 357, 365, 374,
		383, 392, 402, 412, 422, 432, 442, 453, 464, 475, 487, 499, 511, 523,
		536, 549, 562, 576, 590, 604, 619, 634, 649, 665, 681, 698, 715, 732,
		750, 768, 787, 806, 825, 845, 866, 887, 909, 931, 953, 976,
	}
	e192 = []float64{
		100, 101, 102, 104, 105, 106, 107, 109, 110, 111, 113, 114, 115, 117, 118,
		120, 121, 123, 124, 126, 127, 129, 130, 132, 133, 135, 137, 138, 140, 142,
		143, 145, 147, 149, 150, 152, 154, 156, 158, 160, 162, 164, 165, 167, 169,
		172, 174, 176, 178, 180, 182, 184, 187, 189, 191, 193, 196, 198, 200, 203,
		205, 208, 210, 213, 215, 218, 221, 223, 226, 229, 232, 234, 237, 240, 243,
		246, 249, 252, 255, 258, 261, 264, 267, 271, 274, 277, 280, 284, 287, 291,
		294, 298, 301, 305, 309, 312, 316, 320, 324, 328, 332, 336, 340, 344, 348,
		352, 357, 361, 365, 370, 374, 379, 383, 388, 392, 397, 402, 407, 412, 417,
		422, 427, 432, 437, 442, 448, 453, 459, 464, 470, 475, 481, 487, 493, 499,
		505, 511, 517, 523, 530, 536, 542, 549, 556, 562, 569, 576, 583, 590, 597,
		604, 612, 619, 626, 634, 642, 649, 657, 665, 673, 681, 690, 698, 706, 715,
		723, 732, 741, 750, 759, 768, 777, 787, 796, 806, 816, 825, 835, 845, 856,
		866, 876, 887, 898, 909, 920, 931, 942, 953, 965, 976, 988,
	}
)

// seriesTable maps lower-case series names to their decade tables.
// Union series (e24_eXX) are built once at init.
var seriesTable = map[string][]float64{
	"e1":       e1,
	"e3":       e3,
	"e6":       e6,
	"e12":      e12,
	"e24":      e24,
	"e48":      e48,
	"e96":      e96,
	"e192":     e192,
	"e24_e48":  union(e24, e48),
	"e24_e96":  union(e24, e96),
	"e24_e192": union(e24, e192),
}

// Decade exponents covered by Expand: 1 pF-class values up to tera-scale.
const (
	minDecade = -12
	maxDecade = 12
)

// union merges sorted decade tables into one sorted, duplicate-free table.
func union(a, b []float64) []float64 {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)

	return slices.Compact(out)
}

// SeriesNames returns the known series names in a stable order.
func SeriesNames() []string {
	names := make([]string, 0, len(seriesTable))
	for name := range seriesTable {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if la, lb := len(a), len(b); la != lb {
			return la - lb
		}

		return strings.Compare(a, b)
	})

	return names
}

// Decade returns a copy of the three-digit decade table for a named series.
func Decade(name string) ([]float64, bool) {
	t, ok := seriesTable[strings.ToLower(name)]
	if !ok {
		return nil, false
	}

	return slices.Clone(t), true
}

// Expand turns a series name or value list into concrete values inside [min, max].
//
// A known series name ("e24", case-insensitive) is expanded over every decade
// from 10^-12 to 10^12; any other string is parsed as a comma-separated value
// list with optional SI prefixes ("100,2.2k,4.7M"). Values outside [min, max]
// are dropped.
//
// Errors:
//   - ErrUnknownSeries when the name is unknown and the list cannot be parsed.
//   - ErrEmptyRange when nothing survives the window.
func Expand(series string, min, max float64) ([]float64, error) {
	var out []float64
	if table, ok := seriesTable[strings.ToLower(strings.TrimSpace(series))]; ok {
		out = expandDecades(table, min, max)
	} else {
		list, err := ParseList(series)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", series, ErrUnknownSeries)
		}
		for _, v := range list {
			if min <= v && v <= max {
				out = append(out, v)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("series %q in [%g, %g]: %w", series, min, max, ErrEmptyRange)
	}

	return out, nil
}

// expandDecades scales a three-digit table across all supported decades.
// Division is used for negative exponents so that values such as 4.7e-9
// come out as the nearest double to the decimal literal.
func expandDecades(table []float64, min, max float64) []float64 {
	var out []float64
	for exp := minDecade; exp <= maxDecade; exp++ {
		e := exp - 3
		for _, v := range table {
			var val float64
			if e >= 0 {
				val = v * math.Pow10(e)
			} else {
				val = v / math.Pow10(-e)
			}
			if min <= val && val <= max {
				out = append(out, val)
			}
		}
	}

	return out
}
