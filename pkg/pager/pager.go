// Package pager resolves query modes and drives paginated retrieval.
//
// A Pager owns the session's single mutable query state. Each submission
// starts a new generation; pages carry their generation id so consumers can
// drop results that a newer query has superseded.
package pager

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"pokegrid/pkg/api"
	"pokegrid/pkg/cache"
	"pokegrid/pkg/catalog"
	"pokegrid/pkg/fetch"
	"pokegrid/pkg/logging"
)

// DefaultPageSize is the number of entities requested per page.
const DefaultPageSize = 24

// Page is one delivered page of results.
type Page struct {
	// Gen identifies the query generation this page belongs to. Consumers
	// must drop pages from superseded generations.
	Gen uint64

	// Entities is the page content, already sorted by the query's sort key.
	Entities []catalog.Entity

	// HasMore reports whether another page can be loaded.
	HasMore bool

	// Notice is an informational message, not an error (e.g. a search hit
	// excluded by the active category filter).
	Notice string

	// First marks the first page of a generation; consumers clear
	// previously rendered results before appending it.
	First bool

	// Empty marks a first page with zero results (the empty-state marker).
	Empty bool
}

// Pager drives paginated retrieval across the three query modes. Safe for
// concurrent use; overlapping calls are serialized per field access and
// stale generations resolve through page discards, not cancellation.
type Pager struct {
	mu       sync.Mutex
	client   *api.Client
	resolver *cache.Resolver
	batch    *fetch.BatchFetcher
	pageSize int
	state    queryState
	gen      uint64
	logger   zerolog.Logger
}

// New creates a pager with its collaborators injected.
func New(client *api.Client, resolver *cache.Resolver, batch *fetch.BatchFetcher, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{
		client:   client,
		resolver: resolver,
		batch:    batch,
		pageSize: pageSize,
		logger:   logging.NewLogger("pager"),
	}
}

// PageSize returns the configured page size.
func (p *Pager) PageSize() int {
	return p.pageSize
}

// Generation returns the live query generation.
func (p *Pager) Generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen
}

// IsCurrent reports whether gen is the live query generation.
func (p *Pager) IsCurrent(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return gen == p.gen
}

// HasMore reports whether the current query has another page.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.hasMore
}

// Categories enumerates all category names for the filter control.
func (p *Pager) Categories(ctx context.Context) ([]string, error) {
	names, err := p.client.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return names, nil
}

// Submit starts a new query generation: pagination resets, the mode is
// resolved from the inputs, and the first page is loaded. Pages from
// earlier generations become stale.
func (p *Pager) Submit(ctx context.Context, in Input) (Page, error) {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.state = queryState{
		mode:    ResolveMode(in.Text, in.Category),
		sort:    in.Sort,
		hasMore: true,
	}
	switch p.state.mode {
	case ModeSearch:
		p.state.text = strings.TrimSpace(in.Text)
		p.state.searchCategory = in.Category
	case ModeCategory:
		p.state.category = in.Category
	}
	mode := p.state.mode
	p.mu.Unlock()

	p.logger.Info().
		Uint64("gen", gen).
		Str("mode", mode.String()).
		Str("sort", string(in.Sort)).
		Msg("Query submitted")

	return p.loadPage(ctx, gen, true)
}

// LoadMore loads the next page of the current generation.
func (p *Pager) LoadMore(ctx context.Context) (Page, error) {
	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()
	return p.loadPage(ctx, gen, false)
}

// loadPage runs one page-load round for the given generation.
func (p *Pager) loadPage(ctx context.Context, gen uint64, first bool) (Page, error) {
	p.mu.Lock()
	mode := p.state.mode
	sortKey := p.state.sort
	p.mu.Unlock()

	var (
		entities []catalog.Entity
		hasMore  bool
		notice   string
		err      error
	)
	switch mode {
	case ModeSearch:
		entities, notice, err = p.searchPage(ctx)
		hasMore = false
	case ModeCategory:
		entities, hasMore, err = p.categoryPage(ctx, gen)
	default:
		entities, hasMore, err = p.listPage(ctx, gen)
	}
	if err != nil {
		p.logger.Error().Err(err).
			Uint64("gen", gen).
			Str("mode", mode.String()).
			Msg("Page load failed")
		return Page{Gen: gen, First: first}, err
	}

	p.mu.Lock()
	if gen == p.gen {
		p.state.hasMore = hasMore
	}
	p.mu.Unlock()

	p.logger.Debug().
		Uint64("gen", gen).
		Str("mode", mode.String()).
		Int("entities", len(entities)).
		Bool("has_more", hasMore).
		Msg("Page loaded")

	return Page{
		Gen:      gen,
		Entities: catalog.Sort(entities, sortKey),
		HasMore:  hasMore,
		Notice:   notice,
		First:    first,
		Empty:    first && len(entities) == 0,
	}, nil
}

// listPage fetches one listing page and resolves its identifiers. The
// offset advances by exactly the page size per round regardless of how many
// entries the listing returned; an offset advanced by a round whose detail
// resolution later degrades is not rolled back.
func (p *Pager) listPage(ctx context.Context, gen uint64) ([]catalog.Entity, bool, error) {
	p.mu.Lock()
	offset := p.state.offset
	p.mu.Unlock()
	limit := p.pageSize

	listing, err := p.client.ListPokemon(ctx, offset, limit)
	if err != nil {
		return nil, false, fmt.Errorf("fetch listing page: %w", err)
	}

	// A round superseded mid-flight must not advance the new query's state.
	p.mu.Lock()
	if gen == p.gen {
		p.state.offset = offset + limit
	}
	p.mu.Unlock()

	keys := make([]string, 0, len(listing.Results))
	for _, r := range listing.Results {
		keys = append(keys, r.Name)
	}

	return p.batch.FetchAll(ctx, keys), len(listing.Results) == limit, nil
}

// categoryPage pages through a category's membership. The full membership
// list is fetched once per category; every later page slices it locally
// without further membership calls.
func (p *Pager) categoryPage(ctx context.Context, gen uint64) ([]catalog.Entity, bool, error) {
	p.mu.Lock()
	name := p.state.category
	needCatalog := p.state.catalog == nil
	p.mu.Unlock()

	if needCatalog {
		members, err := p.client.TypeMembers(ctx, name)
		if err != nil {
			return nil, false, fmt.Errorf("fetch category %q: %w", name, err)
		}
		keys := make([]string, 0, len(members))
		for _, m := range members {
			keys = append(keys, m.Name)
		}
		p.mu.Lock()
		if gen == p.gen {
			p.state.catalog = keys
		}
		p.mu.Unlock()
	}

	p.mu.Lock()
	start := p.state.cursor
	end := start + p.pageSize
	if end > len(p.state.catalog) {
		end = len(p.state.catalog)
	}
	slice := p.state.catalog[start:end]
	if gen == p.gen {
		p.state.cursor = end
	}
	hasMore := end < len(p.state.catalog)
	p.mu.Unlock()

	return p.batch.FetchAll(ctx, slice), hasMore, nil
}

// searchPage resolves a single identifier. An active category filter is
// checked against the resolved entity's categories; a mismatch is not an
// error, just an empty result with a notice. An unknown identifier yields
// an empty page. Transport failures surface as page errors so the caller
// can tell them apart from a genuine miss.
func (p *Pager) searchPage(ctx context.Context) ([]catalog.Entity, string, error) {
	p.mu.Lock()
	key := p.state.text
	filter := p.state.searchCategory
	p.mu.Unlock()

	res := p.resolver.Resolve(ctx, key)
	switch res.Status {
	case cache.StatusNotFound:
		return nil, "", nil
	case cache.StatusError:
		return nil, "", fmt.Errorf("search %q: %w", key, res.Err)
	}

	if filter != "" && !hasCategory(res.Entity, filter) {
		notice := fmt.Sprintf("%s is not a %s type", res.Entity.Name, filter)
		return nil, notice, nil
	}
	return []catalog.Entity{res.Entity}, "", nil
}

func hasCategory(e catalog.Entity, name string) bool {
	for _, c := range e.Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}
