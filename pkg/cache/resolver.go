package cache

import (
	"context"

	"github.com/rs/zerolog"

	"pokegrid/pkg/api"
	"pokegrid/pkg/catalog"
	"pokegrid/pkg/logging"
)

// Status discriminates resolution outcomes, so callers can tell a genuinely
// unknown identifier from a transport failure.
type Status int

const (
	// StatusOK means the entity resolved, from cache or the API.
	StatusOK Status = iota

	// StatusNotFound means the API does not know the identifier.
	StatusNotFound

	// StatusError means resolution failed for transport or server reasons;
	// Err carries the cause.
	StatusError
)

// String returns the metric label for a status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	default:
		return "error"
	}
}

// Result is the outcome of resolving one identifier.
type Result struct {
	Status Status
	Entity catalog.Entity
	Err    error
}

// Resolver combines the store with the API client: lookups hit the cache
// first, fetch on a miss, and insert what they fetched.
type Resolver struct {
	store  *Store
	client *api.Client
	logger zerolog.Logger
}

// NewResolver creates a resolver over the given store and client.
func NewResolver(store *Store, client *api.Client) *Resolver {
	return &Resolver{
		store:  store,
		client: client,
		logger: logging.NewLogger("resolver"),
	}
}

// Store returns the underlying cache store.
func (r *Resolver) Store() *Store {
	return r.store
}

// Resolve returns the entity for key, from cache or the API.
func (r *Resolver) Resolve(ctx context.Context, key string) Result {
	if e, ok := r.store.Get(key); ok {
		cacheHits.Inc()
		resolveOutcomes.WithLabelValues(StatusOK.String()).Inc()
		return Result{Status: StatusOK, Entity: e}
	}
	cacheMisses.Inc()

	detail, err := r.client.PokemonByKey(ctx, Normalize(key))
	if err != nil {
		if api.IsNotFound(err) {
			resolveOutcomes.WithLabelValues(StatusNotFound.String()).Inc()
			r.logger.Debug().Str("key", key).Msg("Identifier not found")
			return Result{Status: StatusNotFound, Err: err}
		}
		resolveOutcomes.WithLabelValues(StatusError.String()).Inc()
		r.logger.Warn().Err(err).Str("key", key).Msg("Detail fetch failed")
		return Result{Status: StatusError, Err: err}
	}

	e := detail.Entity()
	r.store.Put(key, e)
	resolveOutcomes.WithLabelValues(StatusOK.String()).Inc()
	return Result{Status: StatusOK, Entity: e}
}

// ResolveSoft collapses NotFound and transport failures into a plain miss.
// Batch fetching uses this: unresolved identifiers are dropped from the
// batch rather than failing it.
func (r *Resolver) ResolveSoft(ctx context.Context, key string) (catalog.Entity, bool) {
	res := r.Resolve(ctx, key)
	return res.Entity, res.Status == StatusOK
}
