package cache

import (
	"context"
	"net/http"
	"testing"

	"pokegrid/internal/testutil"
	"pokegrid/pkg/api"
)

func newTestResolver(t *testing.T) (*Resolver, *testutil.MockAPI) {
	t.Helper()

	mock := testutil.NewMockAPI()
	t.Cleanup(mock.Close)

	client, err := api.New(api.Config{BaseURL: mock.URL(), UserAgent: "test/1.0"})
	if err != nil {
		t.Fatalf("api.New failed: %v", err)
	}
	return NewResolver(NewStore(), client), mock
}

func TestResolve_FetchThenCacheHit(t *testing.T) {
	resolver, mock := newTestResolver(t)
	mock.SetResponse("/pokemon/pikachu", testutil.MockResponse{
		Body: testutil.DetailDoc(25, "pikachu", []string{"electric"}, []string{"static"}, map[string]int{"hp": 35}),
	})

	ctx := context.Background()

	res := resolver.Resolve(ctx, "Pikachu")
	if res.Status != StatusOK {
		t.Fatalf("first Resolve status = %v, want StatusOK (%v)", res.Status, res.Err)
	}
	if res.Entity.ID != 25 {
		t.Errorf("entity ID = %d, want 25", res.Entity.ID)
	}
	if mock.RequestCount() != 1 {
		t.Fatalf("request count = %d, want 1", mock.RequestCount())
	}

	// Any alias now short-circuits the network.
	for _, key := range []string{"pikachu", "25", "PIKACHU"} {
		res := resolver.Resolve(ctx, key)
		if res.Status != StatusOK {
			t.Errorf("Resolve(%q) status = %v, want StatusOK", key, res.Status)
		}
	}
	if mock.RequestCount() != 1 {
		t.Errorf("request count = %d after cached lookups, want 1", mock.RequestCount())
	}
}

func TestResolve_NotFound(t *testing.T) {
	resolver, _ := newTestResolver(t)

	res := resolver.Resolve(context.Background(), "missingno")
	if res.Status != StatusNotFound {
		t.Errorf("status = %v, want StatusNotFound", res.Status)
	}
	if res.Err == nil {
		t.Error("Err is nil, want underlying 404")
	}
}

func TestResolve_TransportError(t *testing.T) {
	resolver, mock := newTestResolver(t)
	mock.SetResponse("/pokemon/snorlax", testutil.MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `"boom"`,
	})

	res := resolver.Resolve(context.Background(), "snorlax")
	if res.Status != StatusError {
		t.Errorf("status = %v, want StatusError", res.Status)
	}
	if res.Err == nil {
		t.Error("Err is nil, want server error")
	}
}

func TestResolveSoft_CollapsesFailuresToMiss(t *testing.T) {
	resolver, mock := newTestResolver(t)
	mock.SetResponse("/pokemon/snorlax", testutil.MockResponse{
		StatusCode: http.StatusInternalServerError,
	})

	ctx := context.Background()

	if _, ok := resolver.ResolveSoft(ctx, "missingno"); ok {
		t.Error("not-found identifier reported as resolved")
	}
	if _, ok := resolver.ResolveSoft(ctx, "snorlax"); ok {
		t.Error("failed identifier reported as resolved")
	}
}

func TestResolve_FailuresAreNotCached(t *testing.T) {
	resolver, mock := newTestResolver(t)
	mock.SetResponse("/pokemon/snorlax", testutil.MockResponse{
		StatusCode: http.StatusInternalServerError,
	})

	ctx := context.Background()
	resolver.Resolve(ctx, "snorlax")

	// Endpoint recovers; the next resolve must go back to the network.
	mock.SetResponse("/pokemon/snorlax", testutil.MockResponse{
		Body: testutil.DetailDoc(143, "snorlax", []string{"normal"}, nil, nil),
	})

	res := resolver.Resolve(ctx, "snorlax")
	if res.Status != StatusOK {
		t.Fatalf("status after recovery = %v, want StatusOK", res.Status)
	}
	if mock.PathCount("/pokemon/snorlax") != 2 {
		t.Errorf("detail requests = %d, want 2", mock.PathCount("/pokemon/snorlax"))
	}
}
