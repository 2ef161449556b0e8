// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/rcmb/topology"
)

// DefaultMaxDepth leaves topology nesting unbounded in practice.
const DefaultMaxDepth = 9999

// Options holds the advisory pruning hints and collaborators of a search.
// Neither hint affects the correctness of what is returned, only which
// shapes are considered.
type Options struct {
	// Constraint filters the orientation of the outermost node (element
	// counts >= 2 only).
	Constraint TopologyConstraint

	// MaxDepth drops topologies nested deeper than this.
	MaxDepth int

	// Table supplies topologies; nil means topology.Default().
	Table *topology.Table

	// Logger receives Debug-level search summaries; nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns unconstrained options backed by the shared table.
func DefaultOptions() Options {
	return Options{
		Constraint: NoLimit,
		MaxDepth:   DefaultMaxDepth,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithTopologyConstraint restricts the outermost orientation.
// Panics on a value other than Series, Parallel or NoLimit.
func WithTopologyConstraint(c TopologyConstraint) Option {
	if c < Series || c > NoLimit {
		panic(fmt.Sprintf("search: WithTopologyConstraint(%d): invalid constraint", int(c)))
	}

	return func(o *Options) { o.Constraint = c }
}

// WithMaxDepth bounds topology nesting depth. Panics if depth < 0.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic(fmt.Sprintf("search: WithMaxDepth(%d): depth must be >= 0", depth))
	}

	return func(o *Options) { o.MaxDepth = depth }
}

// WithTable uses t instead of the process-wide topology table.
func WithTable(t *topology.Table) Option {
	return func(o *Options) { o.Table = t }
}

// WithLogger routes Debug-level search summaries to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts over the defaults and fills nil collaborators.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Table == nil {
		o.Table = topology.Default()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}

// admits reports whether a topology root passes the constraint and depth hints.
func (o *Options) admits(n topology.Node) bool {
	if n.Leaves >= 2 && !o.Constraint.admits(n.Parallel) {
		return false
	}

	return n.Depth <= o.MaxDepth
}
