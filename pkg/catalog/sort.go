package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the comparator applied to a result batch.
type SortKey string

const (
	SortIDAsc    SortKey = "id-asc"
	SortIDDesc   SortKey = "id-desc"
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"

	// SortNone leaves a batch in its incoming order.
	SortNone SortKey = ""
)

// SortKeys lists the selectable sort orders in UI cycle order.
var SortKeys = []SortKey{SortIDAsc, SortIDDesc, SortNameAsc, SortNameDesc}

// ParseSortKey maps a user-supplied string to a SortKey. Unrecognized values
// resolve to SortNone, which preserves input order.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortIDAsc, SortIDDesc, SortNameAsc, SortNameDesc:
		return SortKey(s)
	default:
		return SortNone
	}
}

// Label returns a short human-readable form for UI display.
func (k SortKey) Label() string {
	switch k {
	case SortIDAsc:
		return "id ↑"
	case SortIDDesc:
		return "id ↓"
	case SortNameAsc:
		return "name ↑"
	case SortNameDesc:
		return "name ↓"
	default:
		return "unsorted"
	}
}

// Sort returns a new slice ordered by key. The input slice is never mutated
// and the sort is stable. Name comparison is collation-based rather than
// byte-wise. SortNone returns a copy in the original order.
func Sort(entities []Entity, key SortKey) []Entity {
	out := make([]Entity, len(entities))
	copy(out, entities)

	switch key {
	case SortIDAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	case SortIDDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	case SortNameAsc:
		c := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		c := newCollator()
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) > 0
		})
	}
	return out
}

// newCollator builds a case-insensitive collator. Collators are stateful, so
// each sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}
