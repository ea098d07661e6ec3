// Package metrics provides the centralized Prometheus registry reference for
// pokegrid. All metrics are defined in their respective packages (api, cache,
// fetch) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by pokegrid. All metrics
// are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/api):
//   - pokegrid_api_requests_total{endpoint, status} (Counter): Requests by logical endpoint and HTTP status
//   - pokegrid_api_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - pokegrid_api_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Cache Metrics (pkg/cache):
//   - pokegrid_cache_hits_total (Counter): Detail cache hits
//   - pokegrid_cache_misses_total (Counter): Detail cache misses
//   - pokegrid_cache_aliases (Gauge): Alias keys currently stored
//   - pokegrid_resolve_outcomes_total{outcome} (Counter): Resolutions by outcome (ok, not_found, error)
//
// Batch Metrics (pkg/fetch):
//   - pokegrid_batch_size (Histogram): Identifiers per batch
//   - pokegrid_batch_dropped_total (Counter): Identifiers dropped from batches
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   rate(pokegrid_cache_hits_total[5m]) /
//   (rate(pokegrid_cache_hits_total[5m]) + rate(pokegrid_cache_misses_total[5m]))
//
//   # Request Error Rate
//   rate(pokegrid_api_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(pokegrid_api_request_duration_seconds_bucket[5m]))
