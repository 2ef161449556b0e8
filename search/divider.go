// SPDX-License-Identifier: MIT

package search

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rcmb/values"
)

// DoubleCombination is one voltage-divider result: every upper network has
// the same value, every lower network has the same value, and
// Ratio == lower / (upper + lower).
type DoubleCombination struct {
	Ratio  float64
	Uppers []*Combination
	Lowers []*Combination
}

// Upper returns the upper-leg value, or 0 for an empty leg.
func (d *DoubleCombination) Upper() float64 { return firstValue(d.Uppers) }

// Lower returns the lower-leg value, or 0 for an empty leg.
func (d *DoubleCombination) Lower() float64 { return firstValue(d.Lowers) }

// Total returns upper + lower.
func (d *DoubleCombination) Total() float64 { return d.Upper() + d.Lower() }

// NumElements returns the element count of one upper plus one lower network.
func (d *DoubleCombination) NumElements() int {
	if len(d.Uppers) == 0 || len(d.Lowers) == 0 {
		return 0
	}

	return d.Uppers[0].NumLeaves() + d.Lowers[0].NumLeaves()
}

func firstValue(combs []*Combination) float64 {
	if len(combs) == 0 {
		return 0
	}

	return combs[0].value
}

// Verify checks both legs and the stored ratio.
//
// Errors:
//   - ErrBrokenTopology if a leg is empty.
//   - any Combination.Verify error.
//   - ErrInaccurateResult if leg members disagree or the ratio is off by more
//     than 1e-9.
func (d *DoubleCombination) Verify() error {
	if len(d.Uppers) == 0 || len(d.Lowers) == 0 {
		return fmt.Errorf("divider %g: empty leg: %w", d.Ratio, ErrBrokenTopology)
	}
	upper, err := verifyLeg("upper", d.Uppers)
	if err != nil {
		return err
	}
	lower, err := verifyLeg("lower", d.Lowers)
	if err != nil {
		return err
	}
	if got := lower / (upper + lower); math.Abs(got-d.Ratio) > ratioEps {
		return fmt.Errorf("divider ratio stored %g, recomputed %g: %w", d.Ratio, got, ErrInaccurateResult)
	}

	return nil
}

// verifyLeg verifies every member and returns the common value.
func verifyLeg(name string, leg []*Combination) (float64, error) {
	ref := leg[0].value
	for _, c := range leg {
		if err := c.Verify(); err != nil {
			return 0, err
		}
		if math.Abs(c.value-ref) > ref*relTol {
			return 0, fmt.Errorf("%s leg: %g != %g: %w", name, c.value, ref, ErrInaccurateResult)
		}
	}

	return ref, nil
}

// String renders the ratio followed by indented upper and lower networks.
func (d *DoubleCombination) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ratio: %s\n", values.FormatEngineering(d.Ratio))
	sb.WriteString("  uppers:\n")
	for _, c := range d.Uppers {
		fmt.Fprintf(&sb, "    %s\n", c)
	}
	sb.WriteString("  lowers:\n")
	for _, c := range d.Lowers {
		fmt.Fprintf(&sb, "    %s\n", c)
	}

	return sb.String()
}

type jsonDivider struct {
	Ratio  json.RawMessage `json:"ratio"`
	Uppers []*Combination  `json:"uppers"`
	Lowers []*Combination  `json:"lowers"`
}

// MarshalJSON renders {"ratio":number,"uppers":[...],"lowers":[...]}.
func (d *DoubleCombination) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonDivider{
		Ratio:  json.RawMessage(values.FormatEngineering(d.Ratio)),
		Uppers: d.Uppers,
		Lowers: d.Lowers,
	})
}
