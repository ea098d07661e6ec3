// Package testutil provides a configurable mock catalog API for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// MockAPI is a configurable mock catalog API server for testing.
type MockAPI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	requestCount int
	pathCounts   map[string]int

	// In-flight tracking for concurrency assertions.
	inFlight    int
	maxInFlight int
}

// NewMockAPI creates a new mock API server. Paths without a configured
// handler return 404 with an API-style error body.
func NewMockAPI() *MockAPI {
	mock := &MockAPI{
		handlers:   make(map[string]http.HandlerFunc),
		pathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.pathCounts[r.URL.Path]++
		mock.inFlight++
		if mock.inFlight > mock.maxInFlight {
			mock.maxInFlight = mock.inFlight
		}
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.Unlock()

		defer func() {
			mock.mu.Lock()
			mock.inFlight--
			mock.mu.Unlock()
		}()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`"Not Found"`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockAPI) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.pathCounts = make(map[string]int)
	m.maxInFlight = 0
}

// SetHandler sets a custom handler for a specific path.
func (m *MockAPI) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockAPI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}
		w.Header().Set("Content-Type", "application/json")
		status := resp.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// RequestCount returns the total number of requests served.
func (m *MockAPI) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// PathCount returns the number of requests served for an exact path.
func (m *MockAPI) PathCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pathCounts[path]
}

// MaxInFlight returns the highest number of simultaneously in-flight
// requests observed since the last Reset.
func (m *MockAPI) MaxInFlight() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.maxInFlight
}

// DetailDoc builds a wire-format detail document.
func DetailDoc(id int, name string, types, abilities []string, stats map[string]int) string {
	doc := map[string]any{
		"id":   id,
		"name": name,
		"sprites": map[string]any{
			"front_default": fmt.Sprintf("https://img.example/%d.png", id),
			"other": map[string]any{
				"official-artwork": map[string]any{
					"front_default": fmt.Sprintf("https://img.example/art/%d.png", id),
				},
			},
		},
	}

	typeEntries := make([]map[string]any, 0, len(types))
	for i, t := range types {
		typeEntries = append(typeEntries, map[string]any{
			"slot": i + 1,
			"type": map[string]any{"name": t},
		})
	}
	doc["types"] = typeEntries

	abilityEntries := make([]map[string]any, 0, len(abilities))
	for _, a := range abilities {
		abilityEntries = append(abilityEntries, map[string]any{
			"ability": map[string]any{"name": a},
		})
	}
	doc["abilities"] = abilityEntries

	statEntries := make([]map[string]any, 0, len(stats))
	for name, value := range stats {
		statEntries = append(statEntries, map[string]any{
			"base_stat": value,
			"stat":      map[string]any{"name": name},
		})
	}
	doc["stats"] = statEntries

	return mustJSON(doc)
}

// ListingDoc builds one listing page body.
func ListingDoc(count int, names ...string) string {
	results := make([]map[string]any, 0, len(names))
	for _, n := range names {
		results = append(results, map[string]any{
			"name": n,
			"url":  "https://api.example/pokemon/" + n + "/",
		})
	}
	return mustJSON(map[string]any{"count": count, "results": results})
}

// TypeDoc builds a category membership body.
func TypeDoc(members ...string) string {
	entries := make([]map[string]any, 0, len(members))
	for _, n := range members {
		entries = append(entries, map[string]any{
			"pokemon": map[string]any{"name": n},
		})
	}
	return mustJSON(map[string]any{"pokemon": entries})
}

// TypeListDoc builds the category enumeration body.
func TypeListDoc(names ...string) string {
	results := make([]map[string]any, 0, len(names))
	for _, n := range names {
		results = append(results, map[string]any{"name": n})
	}
	return mustJSON(map[string]any{"results": results})
}

// InstallUniverse installs handlers for n sequential entities named
// "poke-1".."poke-n": a listing endpoint honoring offset/limit and one
// detail endpoint per entity. Entity i belongs to type "normal" with a full
// stat block.
func (m *MockAPI) InstallUniverse(n int) {
	m.SetHandler("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if offset < 0 {
			offset = 0
		}
		end := offset + limit
		if end > n {
			end = n
		}
		var names []string
		for i := offset; i < end; i++ {
			names = append(names, fmt.Sprintf("poke-%d", i+1))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(ListingDoc(n, names...)))
	})

	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("poke-%d", i)
		body := DetailDoc(i, name, []string{"normal"}, []string{"run-away"}, map[string]int{
			"hp": 40 + i, "attack": 50, "defense": 50,
			"special-attack": 40, "special-defense": 40, "speed": 60,
		})
		m.SetResponse("/pokemon/"+name, MockResponse{Body: body})
		m.SetResponse("/pokemon/"+strconv.Itoa(i), MockResponse{Body: body})
	}
}

// InstallType installs a category membership endpoint with the given members
// plus their detail endpoints.
func (m *MockAPI) InstallType(name string, memberIDs []int) {
	members := make([]string, 0, len(memberIDs))
	for _, id := range memberIDs {
		memberName := fmt.Sprintf("poke-%d", id)
		members = append(members, memberName)
		body := DetailDoc(id, memberName, []string{name}, []string{"run-away"}, map[string]int{
			"hp": 40 + id, "attack": 50, "defense": 50,
			"special-attack": 40, "special-defense": 40, "speed": 60,
		})
		m.SetResponse("/pokemon/"+memberName, MockResponse{Body: body})
		m.SetResponse("/pokemon/"+strconv.Itoa(id), MockResponse{Body: body})
	}
	m.SetResponse("/type/"+name, MockResponse{Body: TypeDoc(members...)})
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
