// SPDX-License-Identifier: MIT

package search

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/rcmb/topology"
	"github.com/katalvlaran/rcmb/values"
)

// Combination is an immutable series/parallel network with every leaf bound
// to a catalog value.
type Combination struct {
	typ      ComponentType
	topo     topology.ID
	parallel bool
	leaves   int
	children []*Combination
	value    float64
}

// Type returns the component type the network was built for.
func (c *Combination) Type() ComponentType { return c.typ }

// Topology returns the shape ID in the table that produced c.
func (c *Combination) Topology() topology.ID { return c.topo }

// Parallel reports the orientation of the outermost join.
func (c *Combination) Parallel() bool { return c.parallel }

// Children returns a copy of the child list; nil for a leaf.
func (c *Combination) Children() []*Combination { return slices.Clone(c.children) }

// Value returns the combined value.
func (c *Combination) Value() float64 { return c.value }

// NumLeaves returns the element count.
func (c *Combination) NumLeaves() int { return c.leaves }

// IsLeaf reports whether c is a single element.
func (c *Combination) IsLeaf() bool { return len(c.children) == 0 }

// Verify recomputes every composite value from its children.
//
// Errors:
//   - ErrNegativeValue if a recomputed value is below zero.
//   - ErrInaccurateResult if it deviates from the stored value by more than
//     value/1e9.
func (c *Combination) Verify() error {
	if c.IsLeaf() {
		return nil
	}
	for _, child := range c.children {
		if err := child.Verify(); err != nil {
			return err
		}
	}

	inv := c.typ.IsReciprocal(c.parallel)
	accum := 0.0
	for _, child := range c.children {
		if !inv {
			accum += child.value
			continue
		}
		if child.value == 0 {
			accum = 0
			break
		}
		accum += 1 / child.value
	}
	if inv {
		accum = 1 / accum
	}

	if accum < 0 {
		return fmt.Errorf("%s: recomputed %g: %w", c, accum, ErrNegativeValue)
	}
	if math.Abs(accum-c.value) > accum*relTol {
		return fmt.Errorf("%s: stored %g, recomputed %g: %w", c, c.value, accum, ErrInaccurateResult)
	}

	return nil
}

// IsNormalized reports whether adjacent siblings sharing a topology appear in
// non-increasing value order at every level. Only the normalized member of a
// family of sibling permutations is reported by a search.
func (c *Combination) IsNormalized() bool {
	if c.IsLeaf() {
		return true
	}
	eps := c.value * relTol
	for i := 1; i < len(c.children); i++ {
		prev, curr := c.children[i-1], c.children[i]
		if prev.topo == curr.topo && prev.value+eps < curr.value {
			return false
		}
	}
	for _, child := range c.children {
		if !child.IsNormalized() {
			return false
		}
	}

	return true
}

// Normalized returns the members of combs that are normalized, in order.
// The input is not modified.
func Normalized(combs []*Combination) []*Combination {
	out := make([]*Combination, 0, len(combs))
	for _, c := range combs {
		if c.IsNormalized() {
			out = append(out, c)
		}
	}

	return out
}

// String renders the network with SI values, "--" for series and "//" for
// parallel joins: "(4.7k//10k)--220". A leaf renders as its value.
func (c *Combination) String() string {
	var sb strings.Builder
	c.format(&sb)

	return sb.String()
}

func (c *Combination) format(sb *strings.Builder) {
	if c.IsLeaf() {
		sb.WriteString(values.FormatSI(c.value))
		return
	}
	sep := "--"
	if c.parallel {
		sep = "//"
	}
	for i, child := range c.children {
		if i > 0 {
			sb.WriteString(sep)
		}
		if child.IsLeaf() {
			child.format(sb)
			continue
		}
		sb.WriteByte('(')
		child.format(sb)
		sb.WriteByte(')')
	}
}

// jsonNode is the wire shape of a composite Combination.
type jsonNode struct {
	Parallel bool            `json:"parallel"`
	Value    json.RawMessage `json:"value"`
	Children []*Combination  `json:"children"`
}

// MarshalJSON renders a leaf as a bare number and a composite as
// {"parallel":bool,"value":number,"children":[...]}. Numbers use
// engineering notation.
func (c *Combination) MarshalJSON() ([]byte, error) {
	num := json.RawMessage(values.FormatEngineering(c.value))
	if c.IsLeaf() {
		return num, nil
	}

	return json.Marshal(jsonNode{Parallel: c.parallel, Value: num, Children: c.children})
}
