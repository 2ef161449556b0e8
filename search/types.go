// SPDX-License-Identifier: MIT

package search

import "fmt"

// ComponentType selects which orientation combines by plain sum and which by
// reciprocal sum.
type ComponentType int

const (
	// Resistor: series adds values, parallel adds reciprocals.
	Resistor ComponentType = iota
	// Capacitor: parallel adds values, series adds reciprocals.
	Capacitor
)

// String returns "resistor" or "capacitor".
func (c ComponentType) String() string {
	switch c {
	case Resistor:
		return "resistor"
	case Capacitor:
		return "capacitor"
	default:
		return fmt.Sprintf("ComponentType(%d)", int(c))
	}
}

// IsReciprocal reports whether a node with the given orientation combines its
// children by reciprocal sum for this component type.
func (c ComponentType) IsReciprocal(parallel bool) bool {
	if c == Capacitor {
		return !parallel
	}

	return parallel
}

func (c ComponentType) valid() bool { return c == Resistor || c == Capacitor }

// TopologyConstraint restricts the orientation of the outermost node.
// It is a bitmask: NoLimit == Series|Parallel.
type TopologyConstraint int

const (
	Series   TopologyConstraint = 1
	Parallel TopologyConstraint = 2
	NoLimit  TopologyConstraint = Series | Parallel
)

// String returns "series", "parallel" or "any".
func (t TopologyConstraint) String() string {
	switch t {
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	case NoLimit:
		return "any"
	default:
		return fmt.Sprintf("TopologyConstraint(%d)", int(t))
	}
}

// ParseTopologyConstraint maps "series", "parallel" and "any" (or "") to a
// constraint.
func ParseTopologyConstraint(s string) (TopologyConstraint, error) {
	switch s {
	case "series":
		return Series, nil
	case "parallel":
		return Parallel, nil
	case "any", "":
		return NoLimit, nil
	default:
		return 0, fmt.Errorf("topology constraint %q: %w", s, ErrParameterOutOfRange)
	}
}

func (t TopologyConstraint) admits(parallel bool) bool {
	if parallel {
		return t&Parallel != 0
	}

	return t&Series != 0
}

// MaxElements is the hard ceiling on elements per search. Beyond it the
// topology count makes exhaustive enumeration infeasible.
const MaxElements = 15

// relTol is the relative tolerance applied to every value comparison.
const relTol = 1e-9

// ratioEps is the absolute tolerance used by divider searches.
const ratioEps = 1e-9
