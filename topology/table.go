// SPDX-License-Identifier: MIT

package topology

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// bucketKey addresses one memoized Topologies result. The leaf bucket is
// always stored under {1, false}.
type bucketKey struct {
	leaves   int
	parallel bool
}

func (k bucketKey) String() string {
	return strconv.Itoa(k.leaves) + "/" + orientationLabel(k.parallel)
}

// Table is a content-addressed arena of topology nodes with memoized
// per-(leaves, orientation) buckets. The zero value is not usable; call
// NewTable or Default.
type Table struct {
	mu      sync.RWMutex
	nodes   []Node
	index   map[string]ID
	buckets map[bucketKey][]ID

	// group deduplicates concurrent first-time generation of a bucket.
	group singleflight.Group

	logger *slog.Logger
}

// NewTable returns an isolated table holding only the leaf node.
func NewTable(opts ...Option) *Table {
	t := &Table{
		nodes:   []Node{{ID: Leaf, Leaves: 1}},
		index:   make(map[string]ID),
		buckets: map[bucketKey][]ID{{leaves: 1}: {Leaf}},
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table used when callers supply none.
func Default() *Table {
	defaultOnce.Do(func() { defaultTable = NewTable() })

	return defaultTable
}

// Topologies returns every canonical topology with the given leaf count whose
// root has the given orientation. For leaves == 1 the orientation is ignored
// and the single leaf is returned.
//
// The result is memoized and shared: callers must not modify it.
// Panics if leaves < 1.
func (t *Table) Topologies(leaves int, parallel bool) []ID {
	if leaves < 1 {
		panic(fmt.Sprintf("topology: leaf count must be >= 1, got %d", leaves))
	}
	key := bucketKey{leaves: leaves, parallel: parallel && leaves >= 2}
	if ids, ok := t.bucket(key); ok {
		return ids
	}

	v, _, _ := t.group.Do(key.String(), func() (any, error) {
		// Another caller may have finished between the lookup and Do.
		if ids, ok := t.bucket(key); ok {
			return ids, nil
		}
		ids := t.generate(leaves, parallel)
		t.mu.Lock()
		t.buckets[key] = ids
		t.mu.Unlock()

		return ids, nil
	})

	return v.([]ID)
}

func (t *Table) bucket(key bucketKey) ([]ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ids, ok := t.buckets[key]

	return ids, ok
}

// Node returns the node for id. Panics if id was not issued by t.
func (t *Table) Node(id ID) Node {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.nodes[id]
}

// Len returns the number of interned nodes, the leaf included.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// Count is one populated bucket as reported by Counts.
type Count struct {
	Leaves     int
	Parallel   bool
	Topologies int
}

// Counts lists the populated buckets ordered by leaf count, series first.
func (t *Table) Counts() []Count {
	t.mu.RLock()
	out := make([]Count, 0, len(t.buckets))
	for k, ids := range t.buckets {
		out = append(out, Count{Leaves: k.leaves, Parallel: k.parallel, Topologies: len(ids)})
	}
	t.mu.RUnlock()

	slices.SortFunc(out, func(a, b Count) int {
		if a.Leaves != b.Leaves {
			return a.Leaves - b.Leaves
		}
		switch {
		case a.Parallel == b.Parallel:
			return 0
		case a.Parallel:
			return 1
		default:
			return -1
		}
	})

	return out
}

// generate builds the bucket for leaves >= 2.
func (t *Table) generate(leaves int, parallel bool) []ID {
	start := time.Now()
	g := generator{table: t, parallel: parallel, parts: make([]int, 0, leaves)}
	g.split(leaves)

	elapsed := time.Since(start)
	bucketsGenerated.WithLabelValues(orientationLabel(parallel)).Inc()
	bucketDuration.Observe(elapsed.Seconds())
	t.logger.Debug("topology bucket generated",
		slog.Int("leaves", leaves),
		slog.Bool("parallel", parallel),
		slog.Int("topologies", len(g.out)),
		slog.Duration("elapsed", elapsed),
	)

	return g.out
}

// generator holds the state of one bucket build.
type generator struct {
	table    *Table
	parallel bool
	parts    []int
	out      []ID
}

// split enumerates non-increasing partitions of remaining into the tail of
// g.parts. The first part is capped at remaining-1 so every partition has at
// least two parts.
func (g *generator) split(remaining int) {
	if remaining == 0 {
		g.collect()
		return
	}
	wMax := remaining
	if n := len(g.parts); n == 0 {
		wMax = remaining - 1
	} else if prev := g.parts[n-1]; prev < wMax {
		wMax = prev
	}
	for w := 1; w <= wMax; w++ {
		g.parts = append(g.parts, w)
		g.split(remaining - w)
		g.parts = g.parts[:len(g.parts)-1]
	}
}

// collect walks the cross product of child choices for the current partition
// and interns every canonical combination.
func (g *generator) collect() {
	k := len(g.parts)
	choices := make([][]ID, k)
	for i, p := range g.parts {
		choices[i] = g.table.Topologies(p, !g.parallel)
	}

	idx := make([]int, k)
	children := make([]ID, k)
	for {
		if g.pick(choices, idx, children) {
			g.out = append(g.out, g.table.intern(g.parallel, children))
		}
		// Odometer with the first position turning fastest.
		i := 0
		for ; i < k; i++ {
			idx[i]++
			if idx[i] < len(choices[i]) {
				break
			}
			idx[i] = 0
		}
		if i == k {
			return
		}
	}
}

// pick fills children from idx and reports whether the choice is canonical:
// adjacent children from the same part size must have non-increasing IDs.
func (g *generator) pick(choices [][]ID, idx []int, children []ID) bool {
	for i := range idx {
		children[i] = choices[i][idx[i]]
		if i > 0 && g.parts[i] == g.parts[i-1] && children[i] > children[i-1] {
			return false
		}
	}

	return true
}

// intern returns the ID of the node (parallel, children), adding it if new.
func (t *Table) intern(parallel bool, children []ID) ID {
	key := contentKey(parallel, children)

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[key]; ok {
		return id
	}

	leaves, depth := 0, 0
	for _, c := range children {
		n := t.nodes[c]
		leaves += n.Leaves
		depth = max(depth, n.Depth)
	}
	id := ID(len(t.nodes))
	t.nodes = append(t.nodes, Node{
		ID:       id,
		Parallel: parallel,
		Children: slices.Clone(children),
		Leaves:   leaves,
		Depth:    depth + 1,
	})
	t.index[key] = id
	nodesInterned.Inc()

	return id
}

// contentKey encodes orientation and child IDs into a map key.
func contentKey(parallel bool, children []ID) string {
	buf := make([]byte, 1, 1+4*len(children))
	if parallel {
		buf[0] = 1
	}
	for _, c := range children {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c))
	}

	return string(buf)
}
