// Package cache memoizes resolved entity details for the lifetime of a
// session. An entry is inserted under every alias a caller might use again
// (the raw lookup key, the numeric id, the canonical name), so repeated
// lookups by any of them hit the cache. Entries are never evicted.
package cache

import (
	"strconv"
	"strings"
	"sync"

	"pokegrid/pkg/catalog"
)

// Normalize canonicalizes a lookup key: whitespace-trimmed, lowercased.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Store is an append-only in-memory detail cache, safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]catalog.Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]catalog.Entity)}
}

// Get returns the entity cached under key, if any. Lookup is
// case-insensitive and whitespace-trimmed.
func (s *Store) Get(key string) (catalog.Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[Normalize(key)]
	return e, ok
}

// Put inserts the entity under its canonical name, stringified id, and the
// raw key as typed by the caller (which may differ from both, e.g. "25" for
// an entity named "pikachu").
func (s *Store) Put(rawKey string, e catalog.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[Normalize(rawKey)] = e
	s.entries[strconv.Itoa(e.ID)] = e
	s.entries[Normalize(e.Name)] = e
	cacheAliases.Set(float64(len(s.entries)))
}

// Len returns the number of distinct aliases currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
