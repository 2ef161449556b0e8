// SPDX-License-Identifier: MIT

// Package topology enumerates the canonical shapes of series/parallel networks.
//
// A topology is the shape of a network with a fixed number of leaves, with no
// element values assigned. Every composite node alternates orientation with
// its composite children: the children of a series node are parallel
// sub-networks (or single leaves) and vice versa. Two shapes that differ only
// by the order of interchangeable siblings are reported once.
//
// Nodes live in a Table, an arena addressed by ID. The table is
// content-addressed: a node is keyed by its orientation and the ID sequence of
// its children, so structurally identical shapes always share one ID no matter
// which goroutine or which call produced them first.
//
// Generation (for leaves ≥ 2):
//  1. Partition leaves into parts p1 ≥ p2 ≥ … ≥ pk with k ≥ 2.
//  2. Expand each part into Topologies(pi, !parallel).
//  3. Walk the cross product of the child choices. When two adjacent children
//     have the same leaf count they must appear in non-increasing ID order;
//     every other ordering is a permutation of an accepted shape.
//
// Per orientation the counts for 1..8 leaves are 1, 1, 2, 5, 12, 33, 90, 261.
//
// Concurrency:
//   - Buckets are built once per (leaves, orientation) under singleflight.
//   - Node interning is guarded by a sync.RWMutex.
//   - Returned slices are shared and must be treated as read-only.
//
// Example:
//
//	tbl := topology.NewTable()
//	for _, id := range tbl.Topologies(3, false) {
//		fmt.Println(tbl.String(id))
//	}
package topology
