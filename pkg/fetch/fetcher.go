// Package fetch provides bounded-concurrency batch resolution of entity
// details.
//
// A batch seeds a work queue with every requested identifier and drains it
// through a fixed pool of workers, so at most MaxConcurrency detail fetches
// are in flight at once. Results arrive in completion order; callers that
// need a particular order sort downstream.
package fetch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"pokegrid/pkg/catalog"
)

// Prometheus metrics for batch operations.
var (
	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pokegrid_batch_size",
		Help:    "Identifiers per batch fetch",
		Buckets: []float64{1, 8, 24, 48, 96, 200},
	})

	batchDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pokegrid_batch_dropped_total",
		Help: "Identifiers dropped from batches (not found or failed)",
	})
)

// Config holds batch fetcher configuration.
type Config struct {
	// MaxConcurrency bounds simultaneously in-flight detail fetches.
	MaxConcurrency int
}

// DefaultConfig returns defaults sized for the public API.
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 12,
	}
}

// Resolver resolves one identifier, reporting success or a miss. Misses
// (unknown identifiers and per-key fetch failures alike) are dropped from
// batch results.
type Resolver interface {
	ResolveSoft(ctx context.Context, key string) (catalog.Entity, bool)
}

// BatchFetcher resolves many identifiers through a bounded worker pool.
type BatchFetcher struct {
	resolver Resolver
	config   Config
}

// NewBatchFetcher creates a new batch fetcher.
func NewBatchFetcher(resolver Resolver, config Config) *BatchFetcher {
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 12
	}
	return &BatchFetcher{
		resolver: resolver,
		config:   config,
	}
}

// FetchAll resolves every identifier in keys and returns the entities that
// resolved, in completion order. The batch itself never fails: identifiers
// that are unknown or whose fetch failed are logged and dropped.
func (bf *BatchFetcher) FetchAll(ctx context.Context, keys []string) []catalog.Entity {
	start := time.Now()
	batchSize.Observe(float64(len(keys)))
	if len(keys) == 0 {
		return nil
	}

	queue := make(chan string, len(keys))
	results := make(chan catalog.Entity, len(keys))
	for _, key := range keys {
		queue <- key
	}
	close(queue)

	workers := bf.config.MaxConcurrency
	if workers > len(keys) {
		workers = len(keys)
	}

	var wg sync.WaitGroup
	var dropped atomic.Int64
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go bf.worker(ctx, queue, results, &wg, &dropped)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]catalog.Entity, 0, len(keys))
	for e := range results {
		out = append(out, e)
	}

	if n := dropped.Load(); n > 0 {
		batchDroppedTotal.Add(float64(n))
	}

	log.Debug().
		Int("requested", len(keys)).
		Int("resolved", len(out)).
		Int("workers", workers).
		Dur("duration", time.Since(start)).
		Msg("Batch fetch complete")

	return out
}

// worker drains the key queue one identifier at a time, pulling the next
// queued key as soon as its current fetch settles.
func (bf *BatchFetcher) worker(ctx context.Context, queue <-chan string, results chan<- catalog.Entity, wg *sync.WaitGroup, dropped *atomic.Int64) {
	defer wg.Done()

	for key := range queue {
		select {
		case <-ctx.Done():
			return
		default:
		}

		e, ok := bf.resolver.ResolveSoft(ctx, key)
		if !ok {
			log.Warn().Str("key", key).Msg("Identifier dropped from batch")
			dropped.Add(1)
			continue
		}
		results <- e
	}
}
