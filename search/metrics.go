// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/katalvlaran/rcmb/search")

var (
	// searchesTotal counts top-level searches.
	// Labels: kind ("combinations", "dividers"); result ("ok", "too_large",
	// "invalid", "verify", "canceled").
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rcmb_searches_total",
		Help: "Top-level searches by kind and result",
	}, []string{"kind", "result"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rcmb_search_duration_seconds",
		Help:    "Top-level search duration",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
	}, []string{"kind"})

	assignmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rcmb_search_assignments_total",
		Help: "Complete feasible leaf assignments enumerated",
	})

	statesLive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rcmb_search_states_live",
		Help: "Search-state nodes currently allocated",
	})
)

// liveStates mirrors statesLive for callers without a metrics registry.
var liveStates atomic.Int64

// LiveStates returns the number of search-state nodes currently allocated
// across all running searches.
func LiveStates() int64 { return liveStates.Load() }

func observe(kind string, start time.Time, err error) {
	searchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	searchesTotal.WithLabelValues(kind, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrSearchSpaceTooLarge):
		return "too_large"
	case errors.Is(err, ErrParameterOutOfRange), errors.Is(err, ErrParameterRangeReversal):
		return "invalid"
	case errors.Is(err, ErrInaccurateResult), errors.Is(err, ErrNegativeValue), errors.Is(err, ErrBrokenTopology):
		return "verify"
	default:
		return "canceled"
	}
}
