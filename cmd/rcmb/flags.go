// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/rcmb/values"
	"github.com/spf13/pflag"
)

// siValue is a float64 flag that accepts SI suffixes ("4.7k", "100n").
type siValue float64

func (v *siValue) String() string { return values.FormatSI(float64(*v)) }

func (v *siValue) Set(s string) error {
	f, err := values.ParseValue(s)
	if err != nil {
		return err
	}
	*v = siValue(f)

	return nil
}

func (v *siValue) Type() string { return "value" }

// fallback replaces *dst with def unless the named flag was set explicitly.
func fallback[T any](fs *pflag.FlagSet, name string, dst *T, def T) {
	if !fs.Changed(name) {
		*dst = def
	}
}
