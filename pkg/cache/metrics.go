package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits tracks detail cache hits.
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokegrid_cache_hits_total",
			Help: "Total number of detail cache hits",
		},
	)

	// cacheMisses tracks detail cache misses.
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pokegrid_cache_misses_total",
			Help: "Total number of detail cache misses",
		},
	)

	// cacheAliases tracks the number of aliases currently stored.
	cacheAliases = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pokegrid_cache_aliases",
			Help: "Number of alias keys in the detail cache",
		},
	)

	// resolveOutcomes tracks resolution outcomes by status.
	resolveOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokegrid_resolve_outcomes_total",
			Help: "Total identifier resolutions by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "error"
	)
)
