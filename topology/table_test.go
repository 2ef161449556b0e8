// Package topology_test verifies topology counts, canonical form and memoization.
package topology_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/rcmb/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonical renders id with children sorted, so two shapes that differ only
// by sibling order produce the same string.
func canonical(tbl *topology.Table, id topology.ID) string {
	n := tbl.Node(id)
	if n.IsLeaf() {
		return "L"
	}
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		parts = append(parts, canonical(tbl, c))
	}
	slices.Sort(parts)
	op := "S"
	if n.Parallel {
		op = "P"
	}

	return op + "(" + strings.Join(parts, ",") + ")"
}

// TestTopologies_Counts checks the per-orientation bucket sizes.
func TestTopologies_Counts(t *testing.T) {
	want := []int{1, 1, 2, 5, 12, 33, 90, 261}
	tbl := topology.NewTable()
	for n := 1; n <= len(want); n++ {
		for _, parallel := range []bool{false, true} {
			got := tbl.Topologies(n, parallel)
			assert.Len(t, got, want[n-1], "leaves=%d parallel=%v", n, parallel)
		}
	}
}

// TestTopologies_Leaf verifies the shared single leaf.
func TestTopologies_Leaf(t *testing.T) {
	tbl := topology.NewTable()
	s := tbl.Topologies(1, false)
	p := tbl.Topologies(1, true)
	require.Equal(t, []topology.ID{topology.Leaf}, s)
	require.Equal(t, s, p, "orientation is immaterial for one leaf")

	n := tbl.Node(topology.Leaf)
	assert.True(t, n.IsLeaf())
	assert.Equal(t, 1, n.Leaves)
	assert.Equal(t, 0, n.Depth)
}

// TestTopologies_NoReflectiveDuplicates checks that no two topologies in a
// bucket are sibling permutations of each other.
func TestTopologies_NoReflectiveDuplicates(t *testing.T) {
	tbl := topology.NewTable()
	for n := 2; n <= 8; n++ {
		for _, parallel := range []bool{false, true} {
			seen := make(map[string]bool)
			for _, id := range tbl.Topologies(n, parallel) {
				c := canonical(tbl, id)
				require.False(t, seen[c], "duplicate shape %s", c)
				seen[c] = true
			}
		}
	}
}

// TestTopologies_Structure checks orientation alternation, leaf totals and
// depth bookkeeping on every node.
func TestTopologies_Structure(t *testing.T) {
	tbl := topology.NewTable()
	for n := 2; n <= 7; n++ {
		for _, parallel := range []bool{false, true} {
			for _, id := range tbl.Topologies(n, parallel) {
				node := tbl.Node(id)
				require.Equal(t, parallel, node.Parallel)
				require.Equal(t, n, node.Leaves)
				require.GreaterOrEqual(t, len(node.Children), 2)

				sum, depth := 0, 0
				prevLeaves := n
				for _, c := range node.Children {
					child := tbl.Node(c)
					sum += child.Leaves
					depth = max(depth, child.Depth)
					require.LessOrEqual(t, child.Leaves, prevLeaves, "children ordered by leaf count")
					prevLeaves = child.Leaves
					if !child.IsLeaf() {
						require.NotEqual(t, parallel, child.Parallel, "orientation alternates")
					}
				}
				require.Equal(t, n, sum)
				require.Equal(t, depth+1, node.Depth)
			}
		}
	}
}

// TestTopologies_Memoized verifies that repeated calls return the same IDs
// and do not grow the arena.
func TestTopologies_Memoized(t *testing.T) {
	tbl := topology.NewTable()
	first := tbl.Topologies(6, true)
	size := tbl.Len()
	second := tbl.Topologies(6, true)
	assert.Equal(t, first, second)
	assert.Equal(t, size, tbl.Len())
}

// TestTopologies_PanicsOnZero ensures the contract violation is loud.
func TestTopologies_PanicsOnZero(t *testing.T) {
	tbl := topology.NewTable()
	assert.Panics(t, func() { tbl.Topologies(0, false) })
	assert.Panics(t, func() { tbl.Topologies(-3, true) })
}

// TestString renders small shapes in generation order.
func TestString(t *testing.T) {
	tbl := topology.NewTable()
	var got []string
	for _, id := range tbl.Topologies(3, false) {
		got = append(got, tbl.String(id))
	}
	assert.Equal(t, []string{"L--L--L", "(L//L)--L"}, got)
	assert.Equal(t, "L", tbl.String(topology.Leaf))
}

// TestCounts lists populated buckets in order.
func TestCounts(t *testing.T) {
	tbl := topology.NewTable()
	tbl.Topologies(3, true)

	assert.Equal(t, []topology.Count{
		{Leaves: 1, Parallel: false, Topologies: 1},
		{Leaves: 2, Parallel: false, Topologies: 1},
		{Leaves: 3, Parallel: true, Topologies: 2},
	}, tbl.Counts())
}

// TestDefault returns one shared table.
func TestDefault(t *testing.T) {
	assert.Same(t, topology.Default(), topology.Default())
}
