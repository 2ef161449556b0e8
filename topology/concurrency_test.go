// Package topology_test verifies thread-safety of topology.Table under concurrent lookups.
package topology_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/rcmb/topology"
	"github.com/stretchr/testify/require"
)

// TestConcurrentTopologies races many first-time requests against one table
// and checks every caller sees the same bucket and shapes.
func TestConcurrentTopologies(t *testing.T) {
	tbl := topology.NewTable()
	ref := topology.NewTable()

	const workers = 32
	results := make([][]topology.ID, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			// Mixed request order populates sub-buckets from different goroutines.
			n := 2 + i%6
			tbl.Topologies(n, i%2 == 0)
			results[i] = tbl.Topologies(8, false)
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Equal(t, results[0], results[i])
	}

	want := ref.Topologies(8, false)
	require.Len(t, results[0], len(want))
	for i := range want {
		require.Equal(t, canonical(ref, want[i]), canonical(tbl, results[0][i]))
	}
}
