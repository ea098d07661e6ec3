package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:   server.URL,
		UserAgent: "pokegrid-test/0.0.0",
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "valid config",
			config: Config{BaseURL: "http://localhost", UserAgent: "test/1.0"},
		},
		{
			name:        "missing base url",
			config:      Config{UserAgent: "test/1.0"},
			expectError: true,
		},
		{
			name:        "missing user agent",
			config:      Config{BaseURL: "http://localhost"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.config)
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if client == nil {
				t.Error("client is nil")
			}
		})
	}
}

func TestGetJSON_Success(t *testing.T) {
	var gotUA string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"pikachu","url":"https://example/pokemon/25/"}`))
	})

	var ref NamedRef
	if err := client.GetJSON(context.Background(), "detail", "/pokemon/25", &ref); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if ref.Name != "pikachu" {
		t.Errorf("Name = %q, want %q", ref.Name, "pikachu")
	}
	if gotUA != "pokegrid-test/0.0.0" {
		t.Errorf("User-Agent = %q, want test agent", gotUA)
	}
}

func TestGetJSON_HTTPError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantClass  ErrorClass
		isNotFound bool
	}{
		{"not found", http.StatusNotFound, ErrorClassClient, true},
		{"forbidden", http.StatusForbidden, ErrorClassClient, false},
		{"server error", http.StatusInternalServerError, ErrorClassServer, false},
		{"bad gateway", http.StatusBadGateway, ErrorClassServer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			var v map[string]any
			err := client.GetJSON(context.Background(), "detail", "/pokemon/0", &v)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var he *HTTPError
			if !errors.As(err, &he) {
				t.Fatalf("error is %T, want *HTTPError", err)
			}
			if he.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", he.StatusCode, tt.status)
			}
			if got := Classify(err); got != tt.wantClass {
				t.Errorf("Classify = %q, want %q", got, tt.wantClass)
			}
			if IsNotFound(err) != tt.isNotFound {
				t.Errorf("IsNotFound = %v, want %v", IsNotFound(err), tt.isNotFound)
			}
		})
	}
}

func TestGetJSON_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // connection refused from here on

	client, err := New(Config{BaseURL: url, UserAgent: "test/1.0"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var v map[string]any
	err = client.GetJSON(context.Background(), "listing", "/pokemon", &v)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork wrap", err)
	}
	if got := Classify(err); got != ErrorClassNetwork {
		t.Errorf("Classify = %q, want %q", got, ErrorClassNetwork)
	}
}

func TestListPokemon_PathAndDecode(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Write([]byte(`{"count":2,"results":[{"name":"bulbasaur"},{"name":"ivysaur"}]}`))
	})

	page, err := client.ListPokemon(context.Background(), 24, 24)
	if err != nil {
		t.Fatalf("ListPokemon failed: %v", err)
	}
	if gotPath != "/pokemon?offset=24&limit=24" {
		t.Errorf("request path = %q", gotPath)
	}
	if len(page.Results) != 2 || page.Results[0].Name != "bulbasaur" {
		t.Errorf("unexpected results: %+v", page.Results)
	}
}

func TestTypeMembers_Unwrap(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/type/fire" {
			t.Errorf("path = %q, want /type/fire", r.URL.Path)
		}
		w.Write([]byte(`{"pokemon":[{"pokemon":{"name":"charmander"}},{"pokemon":{"name":"vulpix"}}]}`))
	})

	refs, err := client.TypeMembers(context.Background(), "fire")
	if err != nil {
		t.Fatalf("TypeMembers failed: %v", err)
	}
	if len(refs) != 2 || refs[1].Name != "vulpix" {
		t.Errorf("unexpected members: %+v", refs)
	}
}

func TestPokemonDetail_Entity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"id": 25,
			"name": "pikachu",
			"types": [{"slot":1,"type":{"name":"electric"}}],
			"abilities": [{"ability":{"name":"static"}},{"ability":{"name":"lightning-rod"}}],
			"stats": [
				{"base_stat":35,"stat":{"name":"hp"}},
				{"base_stat":90,"stat":{"name":"speed"}}
			],
			"sprites": {
				"front_default": "https://img.example/25.png",
				"other": {"official-artwork": {"front_default": "https://img.example/art/25.png"}}
			}
		}`))
	})

	detail, err := client.PokemonByKey(context.Background(), "25")
	if err != nil {
		t.Fatalf("PokemonByKey failed: %v", err)
	}

	e := detail.Entity()
	if e.ID != 25 || e.Name != "pikachu" {
		t.Errorf("entity identity = %d/%q", e.ID, e.Name)
	}
	if len(e.Categories) != 1 || e.Categories[0] != "electric" {
		t.Errorf("categories = %v", e.Categories)
	}
	if len(e.Attributes) != 2 || e.Attributes[1] != "lightning-rod" {
		t.Errorf("attributes = %v", e.Attributes)
	}
	if got, ok := e.Stat("speed"); !ok || got != 90 {
		t.Errorf("speed stat = %d/%v", got, ok)
	}
	if _, ok := e.Stat("defense"); ok {
		t.Error("defense stat should be absent")
	}
	if e.PrimaryImage() != "https://img.example/art/25.png" {
		t.Errorf("PrimaryImage = %q, want official artwork first", e.PrimaryImage())
	}
}
