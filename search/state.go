// SPDX-License-Identifier: MIT

package search

import (
	"iter"
	"math"

	"github.com/katalvlaran/rcmb/topology"
	"github.com/katalvlaran/rcmb/values"
)

// noTarget marks a state node without a propagated exact target.
const noTarget = -1.0

// stateNode is the per-search mirror of one topology node.
//
// accum holds the running (reciprocal) sum of the parent's children up to and
// including this node; value is this node's combined value once all of its
// leaves are assigned.
type stateNode struct {
	topo     topology.ID
	parallel bool
	leaves   int
	invSum   bool
	finisher bool

	parent   *stateNode
	children []*stateNode
	pos      int

	accum  float64
	value  float64
	target float64
	min    float64
	max    float64
}

func (st *stateNode) isLast() bool {
	return st.parent == nil || st.pos == len(st.parent.children)-1
}

// bound seeds [lo, hi] on st and its first-child chain. Bounds are widened by
// relTol, then relaxed while descending: below a reciprocal node only the
// minimum survives, below a plain-sum node only the maximum.
func (st *stateNode) bound(lo, hi float64) {
	if !(lo > 0) {
		lo = 0
	}
	if math.IsNaN(hi) {
		hi = math.Inf(1)
	}
	if hi <= 0 {
		hi = 0
	}
	if hi < lo {
		hi = lo
	}
	lo -= lo * relTol
	hi += hi * relTol

	for n := st; n != nil; {
		n.min, n.max = lo, hi
		if n.invSum {
			hi = math.Inf(1)
		} else {
			lo = 0
		}
		if len(n.children) == 0 {
			break
		}
		n = n.children[0]
	}
}

// enumerator assigns catalog values to the leaves of one topology,
// depth-first and left to right, pruning with propagated bounds.
//
// It is single-use and not safe for concurrent use.
type enumerator struct {
	typ     ComponentType
	catalog *values.Catalog
	root    *stateNode
	leaves  []*stateNode
	nodes   int
}

// newEnumerator builds the state tree for id and seeds the root bounds and
// target. Pass noTarget to enumerate the whole [min, max] window.
func newEnumerator(typ ComponentType, catalog *values.Catalog, tbl *topology.Table,
	id topology.ID, min, max, target float64) *enumerator {
	e := &enumerator{typ: typ, catalog: catalog}
	e.root = e.build(tbl, id, nil, 0, true)
	e.root.bound(min, max)
	e.root.target = target
	statesLive.Add(float64(e.nodes))
	liveStates.Add(int64(e.nodes))

	return e
}

func (e *enumerator) build(tbl *topology.Table, id topology.ID, parent *stateNode, pos int, finisher bool) *stateNode {
	n := tbl.Node(id)
	st := &stateNode{
		topo:     id,
		parallel: n.Parallel,
		leaves:   n.Leaves,
		invSum:   e.typ.IsReciprocal(n.Parallel),
		finisher: finisher,
		parent:   parent,
		pos:      pos,
		target:   noTarget,
		max:      math.Inf(1),
	}
	e.nodes++
	if n.IsLeaf() {
		e.leaves = append(e.leaves, st)
		return st
	}
	st.children = make([]*stateNode, len(n.Children))
	last := len(n.Children) - 1
	for i, c := range n.Children {
		st.children[i] = e.build(tbl, c, st, i, finisher && i == last)
	}

	return st
}

// close releases the live-state accounting. The enumerator must not be used
// afterwards.
func (e *enumerator) close() {
	statesLive.Sub(float64(e.nodes))
	liveStates.Add(-int64(e.nodes))
	e.nodes = 0
}

// assignments yields the root value of every complete feasible assignment.
// The tree holds that assignment while the consumer runs, so bake may be
// called from the loop body. Breaking out of the loop stops the enumeration.
func (e *enumerator) assignments() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		e.walk(0, yield)
	}
}

// walk assigns leaf pos and recurses; it returns false once yield asked to stop.
func (e *enumerator) walk(pos int, yield func(float64) bool) bool {
	st := e.leaves[pos]
	lo, hi := st.min, st.max
	if lo > hi {
		return true
	}

	var (
		candidates []float64
		nearest    [1]float64
	)
	if values.IsValid(st.target) {
		v := e.catalog.Nearest(st.target)
		if v < lo || hi < v {
			return true
		}
		nearest[0] = v
		candidates = nearest[:]
	} else {
		candidates = e.catalog.Range(lo, hi)
	}

	last := pos+1 == len(e.leaves)
	for _, v := range candidates {
		st.value = v
		e.propagate(st)
		if last {
			assignmentsTotal.Inc()
			if !yield(e.root.value) {
				return false
			}
		} else if !e.walk(pos+1, yield) {
			return false
		}
	}

	return true
}

// propagate folds a freshly assigned leaf into its ancestors until it reaches
// a node with a younger sibling still unassigned, whose bounds it then updates.
func (e *enumerator) propagate(leaf *stateNode) {
	for child := leaf; child.parent != nil; child = child.parent {
		parent := child.parent
		acc := 0.0
		if child.pos > 0 {
			acc = parent.children[child.pos-1].accum
		}
		if parent.invSum {
			acc += 1 / child.value
		} else {
			acc += child.value
		}
		child.accum = acc

		if !child.isLast() {
			e.boundNext(child)
			return
		}
		if parent.invSum {
			parent.value = 1 / acc
		} else {
			parent.value = acc
		}
	}
}

// boundNext derives the bounds, and for finishers the exact target, of the
// sibling after st from the parent's bounds and the partial value so far.
func (e *enumerator) boundNext(st *stateNode) {
	parent := st.parent
	next := parent.children[st.pos+1]
	pmin, pmax := parent.min, parent.max

	partial := st.accum
	if parent.invSum {
		partial = 1 / st.accum
	}

	lo, hi := 0.0, math.Inf(1)
	if parent.invSum {
		if next.isLast() {
			lo = partial * pmin / (partial - pmin)
			hi = partial * pmax / (partial - pmax)
			if hi < lo || math.IsNaN(hi) {
				hi = math.Inf(1)
			}
		} else {
			lo = pmin
		}
	} else {
		if next.isLast() {
			lo = pmin - partial
		}
		hi = pmax - partial
	}

	// Identical neighbors are kept in non-increasing value order.
	if st.topo == next.topo && hi > st.value {
		hi = st.value
	}
	next.bound(lo, hi)

	if !next.finisher {
		return
	}
	next.target = noTarget
	if pt := parent.target; values.IsValid(pt) {
		if parent.invSum {
			next.target = partial * pt / (partial - pt)
		} else {
			next.target = pt - partial
		}
	}
}

// bake snapshots the current assignment.
func (e *enumerator) bake() *Combination {
	return e.bakeNode(e.root)
}

func (e *enumerator) bakeNode(st *stateNode) *Combination {
	c := &Combination{
		typ:      e.typ,
		topo:     st.topo,
		parallel: st.parallel,
		leaves:   st.leaves,
		value:    st.value,
	}
	if len(st.children) > 0 {
		c.children = make([]*Combination, len(st.children))
		for i, child := range st.children {
			c.children[i] = e.bakeNode(child)
		}
	}

	return c
}
