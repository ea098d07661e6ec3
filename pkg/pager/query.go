package pager

import (
	"strings"

	"pokegrid/pkg/catalog"
)

// Mode identifies the active query mode. Exactly one mode's payload fields
// in queryState are meaningful at a time.
type Mode int

const (
	// ModeList pages through the full entity listing.
	ModeList Mode = iota

	// ModeCategory pages through one category's membership.
	ModeCategory

	// ModeSearch resolves a single identifier.
	ModeSearch
)

// String returns the mode's log label.
func (m Mode) String() string {
	switch m {
	case ModeCategory:
		return "category"
	case ModeSearch:
		return "search"
	default:
		return "list"
	}
}

// Input is one query submission from the UI layer.
type Input struct {
	// Text is the free-text search query; non-empty selects search mode.
	Text string

	// Category is the category filter. Alone it selects category mode;
	// combined with Text it constrains the search result.
	Category string

	// Sort orders every delivered page.
	Sort catalog.SortKey
}

// ResolveMode determines the active mode from the filter inputs: non-empty
// search text wins, then a category filter, else plain listing.
func ResolveMode(text, category string) Mode {
	if strings.TrimSpace(text) != "" {
		return ModeSearch
	}
	if category != "" {
		return ModeCategory
	}
	return ModeList
}

// queryState is the single mutable pagination state of a session. It is
// reset wholesale on every submission and mutated only by the Pager.
type queryState struct {
	mode    Mode
	sort    catalog.SortKey
	hasMore bool

	// list mode
	offset int

	// category mode: the full membership is fetched once, then paged
	// locally. A non-nil empty catalog means "fetched, no members".
	category string
	catalog  []string
	cursor   int

	// search mode
	text           string
	searchCategory string
}
