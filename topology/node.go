// SPDX-License-Identifier: MIT

package topology

import "strings"

// ID identifies a node inside one Table. IDs are dense and assigned in
// interning order; they are meaningless across tables.
type ID uint32

// Leaf is the ID of the single leaf node every table starts with.
const Leaf ID = 0

// Node is an immutable topology node.
//
// Invariants:
//   - Leaves == 1 iff len(Children) == 0;
//   - Depth == 0 for the leaf, else 1 + max child depth;
//   - Children is ordered by non-increasing leaf count.
type Node struct {
	ID       ID
	Parallel bool
	Children []ID
	Leaves   int
	Depth    int
}

// IsLeaf reports whether n is the single-slot leaf.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// String renders id as a shape with "L" leaves, "--" for series and "//" for
// parallel joins; composite children are parenthesised.
func (t *Table) String(id ID) string {
	var sb strings.Builder
	t.format(&sb, id)

	return sb.String()
}

func (t *Table) format(sb *strings.Builder, id ID) {
	n := t.Node(id)
	if n.IsLeaf() {
		sb.WriteString("L")
		return
	}
	sep := "--"
	if n.Parallel {
		sep = "//"
	}
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteString(sep)
		}
		if t.Node(c).IsLeaf() {
			sb.WriteString("L")
			continue
		}
		sb.WriteByte('(')
		t.format(sb, c)
		sb.WriteByte(')')
	}
}
