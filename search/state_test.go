// Package search verifies the leaf-assignment enumerator and its bounds.
package search

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/rcmb/topology"
	"github.com/katalvlaran/rcmb/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shapeID returns the first topology of tbl whose rendering is want.
func shapeID(t *testing.T, tbl *topology.Table, leaves int, parallel bool, want string) topology.ID {
	t.Helper()
	for _, id := range tbl.Topologies(leaves, parallel) {
		if tbl.String(id) == want {
			return id
		}
	}
	t.Fatalf("shape %q not found", want)

	return 0
}

// TestEnumerator_SeriesOrder checks that identical neighbors are assigned in
// non-increasing order and every such pair is produced.
func TestEnumerator_SeriesOrder(t *testing.T) {
	tbl := topology.NewTable()
	cat := values.MustCatalog([]float64{1, 2, 3})
	id := shapeID(t, tbl, 2, false, "L--L")

	e := newEnumerator(Resistor, cat, tbl, id, 0, math.Inf(1), noTarget)
	defer e.close()
	got := slices.Collect(e.assignments())
	assert.Equal(t, []float64{2, 3, 4, 4, 5, 6}, got)
}

// TestEnumerator_ParallelBounds checks reciprocal accumulation and the
// unbounded-parent case of the parallel bound formula.
func TestEnumerator_ParallelBounds(t *testing.T) {
	tbl := topology.NewTable()
	cat := values.MustCatalog([]float64{1, 2})
	id := shapeID(t, tbl, 2, true, "L//L")

	e := newEnumerator(Resistor, cat, tbl, id, 0, math.Inf(1), noTarget)
	defer e.close()
	got := slices.Collect(e.assignments())
	assert.InDeltaSlice(t, []float64{0.5, 2.0 / 3.0, 1}, got, 1e-12)
}

// TestEnumerator_CapacitorFlipsAlgebra checks that a series capacitor node
// combines by reciprocal sum.
func TestEnumerator_CapacitorFlipsAlgebra(t *testing.T) {
	tbl := topology.NewTable()
	cat := values.MustCatalog([]float64{2})
	series := shapeID(t, tbl, 2, false, "L--L")

	e := newEnumerator(Capacitor, cat, tbl, series, 0, math.Inf(1), noTarget)
	defer e.close()
	assert.Equal(t, []float64{1}, slices.Collect(e.assignments()))
}

// TestEnumerator_BoundsPrune verifies that only assignments whose root lies
// inside the seeded window are produced.
func TestEnumerator_BoundsPrune(t *testing.T) {
	tbl := topology.NewTable()
	cat := values.MustCatalog([]float64{1, 2, 3, 4, 5})
	id := shapeID(t, tbl, 3, false, "L--L--L")

	e := newEnumerator(Resistor, cat, tbl, id, 7, 8, noTarget)
	defer e.close()
	for v := range e.assignments() {
		require.GreaterOrEqual(t, v, 7.0)
		require.LessOrEqual(t, v, 8.0)
	}
}

// TestEnumerator_TargetTriesNearestOnly checks the finisher target rule: the
// last leaf of a series root only tries the value closest to what is missing.
func TestEnumerator_TargetTriesNearestOnly(t *testing.T) {
	tbl := topology.NewTable()
	cat := values.MustCatalog([]float64{1, 2, 3, 4})
	id := shapeID(t, tbl, 2, false, "L--L")

	e := newEnumerator(Resistor, cat, tbl, id, 0, math.Inf(1), 5)
	defer e.close()
	// first leaf 1: want 4, clamped to ≤1 -> rejected; 2: want 3 > 2 -> rejected;
	// 3: want 2 -> 5; 4: want 1 -> 5.
	assert.Equal(t, []float64{5, 5}, slices.Collect(e.assignments()))
}

// TestEnumerator_StopAndBake checks early termination and that bake captures
// the assignment live at yield time.
func TestEnumerator_StopAndBake(t *testing.T) {
	tbl := topology.NewTable()
	cat := values.MustCatalog([]float64{1, 2, 3})
	id := shapeID(t, tbl, 2, false, "L--L")
	before := LiveStates()

	e := newEnumerator(Resistor, cat, tbl, id, 0, math.Inf(1), noTarget)
	assert.Equal(t, before+3, LiveStates(), "root and two leaves")

	var baked []*Combination
	for range e.assignments() {
		baked = append(baked, e.bake())
		if len(baked) == 2 {
			break
		}
	}
	e.close()

	require.Len(t, baked, 2)
	assert.Equal(t, "1--1", baked[0].String())
	assert.Equal(t, "2--1", baked[1].String())
	assert.Equal(t, 3.0, baked[1].Value())
	assert.Equal(t, before, LiveStates())
}

// TestStateNode_Bound checks clamping, widening and the descent rule.
func TestStateNode_Bound(t *testing.T) {
	tbl := topology.NewTable()
	cat := values.MustCatalog([]float64{1})
	id := shapeID(t, tbl, 3, false, "(L//L)--L")

	e := newEnumerator(Resistor, cat, tbl, id, 10, 5, noTarget)
	defer e.close()
	root := e.root
	assert.InDelta(t, 10, root.min, 1e-6)
	assert.InDelta(t, 10, root.max, 1e-6, "max raised to min")
	assert.Less(t, root.min, 10.0)
	assert.Greater(t, root.max, 10.0)

	first := root.children[0]
	assert.Equal(t, 0.0, first.min, "below a plain sum only the maximum survives")
	assert.Equal(t, root.max, first.max)

	leaf := first.children[0]
	assert.Equal(t, 0.0, leaf.min)
	assert.True(t, math.IsInf(leaf.max, 1), "below a reciprocal sum only the minimum survives")
}
