// SPDX-License-Identifier: MIT

package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatEngineering renders v with a power-of-three exponent so results of very
// different magnitudes stay comparable: values whose exponent falls in
// [-6, 6) print as plain %.12g, others as "<mantissa>e<exp>" (e.g. "4.7e6",
// "100e-9"). The output is a valid JSON number for finite positive input.
func FormatEngineering(v float64) string {
	if !IsValid(v) {
		return strconv.FormatFloat(v, 'g', 12, 64)
	}
	exp := engExponent(v)
	if -6 <= exp && exp < 6 {
		return strconv.FormatFloat(v, 'g', 12, 64)
	}
	var mant float64
	if exp > 0 {
		mant = v / math.Pow10(exp)
	} else {
		mant = v * math.Pow10(-exp)
	}

	return strconv.FormatFloat(mant, 'g', 12, 64) + "e" + strconv.Itoa(exp)
}

// engExponent returns floor(log10(v)) rounded down to a multiple of three.
func engExponent(v float64) int {
	exp := int(math.Floor(math.Log10(v) + 1e-6))

	return int(math.Floor(float64(exp)/3)) * 3
}

// siPrefixes lists the prefixes FormatSI emits, largest first.
var siPrefixes = []struct {
	scale  float64
	prefix string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
	{1e-12, "p"},
	{1e-15, "f"},
}

// FormatSI renders v with an SI prefix and up to three decimals, trailing
// zeros trimmed: 4700 → "4.7k", 1e-7 → "100n", 0.5 → "500m". Values below
// the smallest prefix use it anyway and keep three decimals.
func FormatSI(v float64) string {
	if !IsValid(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	smallest := siPrefixes[len(siPrefixes)-1]
	scale, prefix := smallest.scale, smallest.prefix
	for _, p := range siPrefixes {
		if v >= 0.999999*p.scale {
			scale, prefix = p.scale, p.prefix
			break
		}
	}
	s := strconv.FormatFloat(v/scale, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s + prefix
}

// suffixExponents maps accepted SI suffixes to their decimal exponent.
var suffixExponents = map[string]int{
	"T": 12,
	"G": 9,
	"M": 6,
	"k": 3,
	"K": 3,
	"m": -3,
	"u": -6,
	"µ": -6,
	"μ": -6,
	"n": -9,
	"p": -12,
	"f": -15,
}

// ParseValue parses a number with an optional SI suffix ("4.7k", "100n", "350f").
// Surrounding whitespace is ignored.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty literal: %w", ErrBadValue)
	}
	exp := 0
	for suffix, e := range suffixExponents {
		if strings.HasSuffix(s, suffix) {
			exp = e
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadValue)
	}
	if exp >= 0 {
		return v * math.Pow10(exp), nil
	}

	return v / math.Pow10(-exp), nil
}

// ParseList parses a comma-separated list of ParseValue literals.
func ParseList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := ParseValue(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Key maps v to a 32-bit key that is equal for values agreeing in their
// first seven significant digits: the top byte holds the biased decimal
// exponent and the low 24 bits the rounded mantissa.
func Key(v float64) uint32 {
	exp := int(math.Floor(math.Log10(v)+1e-6)) - 6
	var frac float64
	if exp >= 0 {
		frac = math.Round(v / math.Pow10(exp))
	} else {
		frac = math.Round(v * math.Pow10(-exp))
	}

	return uint32(exp+128)<<24 | uint32(frac)&0x00FFFFFF
}
