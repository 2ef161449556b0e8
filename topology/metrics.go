// SPDX-License-Identifier: MIT

package topology

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// bucketsGenerated counts (leaves, orientation) buckets built, by orientation.
	bucketsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rcmb_topology_buckets_generated_total",
		Help: "Topology buckets generated, by root orientation",
	}, []string{"orientation"})

	// nodesInterned counts nodes added to any table.
	nodesInterned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rcmb_topology_nodes_interned_total",
		Help: "Topology nodes interned across all tables",
	})

	bucketDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rcmb_topology_bucket_duration_seconds",
		Help:    "Time to generate one topology bucket",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
	})
)

func orientationLabel(parallel bool) string {
	if parallel {
		return "parallel"
	}

	return "series"
}
