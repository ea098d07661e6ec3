package catalog

import (
	"reflect"
	"testing"
)

func testEntities() []Entity {
	return []Entity{
		{ID: 25, Name: "pikachu"},
		{ID: 4, Name: "charmander"},
		{ID: 143, Name: "snorlax"},
		{ID: 1, Name: "bulbasaur"},
	}
}

func names(entities []Entity) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.Name
	}
	return out
}

func TestSort_Orders(t *testing.T) {
	tests := []struct {
		name string
		key  SortKey
		want []string
	}{
		{
			name: "id ascending",
			key:  SortIDAsc,
			want: []string{"bulbasaur", "charmander", "pikachu", "snorlax"},
		},
		{
			name: "id descending",
			key:  SortIDDesc,
			want: []string{"snorlax", "pikachu", "charmander", "bulbasaur"},
		},
		{
			name: "name ascending",
			key:  SortNameAsc,
			want: []string{"bulbasaur", "charmander", "pikachu", "snorlax"},
		},
		{
			name: "name descending",
			key:  SortNameDesc,
			want: []string{"snorlax", "pikachu", "charmander", "bulbasaur"},
		},
		{
			name: "unrecognized key keeps input order",
			key:  SortKey("bogus"),
			want: []string{"pikachu", "charmander", "snorlax", "bulbasaur"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(Sort(testEntities(), tt.key))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	input := testEntities()
	before := names(input)

	for _, key := range SortKeys {
		Sort(input, key)
		if got := names(input); !reflect.DeepEqual(got, before) {
			t.Fatalf("Sort(%q) mutated input: %v", key, got)
		}
	}
}

func TestSort_NoOpOnSortedInput(t *testing.T) {
	for _, key := range SortKeys {
		t.Run(string(key), func(t *testing.T) {
			sorted := Sort(testEntities(), key)
			again := Sort(sorted, key)
			if !reflect.DeepEqual(names(again), names(sorted)) {
				t.Errorf("Sort(%q) not stable on sorted input: %v vs %v",
					key, names(again), names(sorted))
			}
		})
	}
}

func TestSort_NameIsCaseInsensitive(t *testing.T) {
	input := []Entity{
		{ID: 1, Name: "Zubat"},
		{ID: 2, Name: "abra"},
		{ID: 3, Name: "Mew"},
	}
	got := names(Sort(input, SortNameAsc))
	want := []string{"abra", "Mew", "Zubat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("case-insensitive name sort = %v, want %v", got, want)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want SortKey
	}{
		{"id-asc", SortIDAsc},
		{"id-desc", SortIDDesc},
		{"name-asc", SortNameAsc},
		{"name-desc", SortNameDesc},
		{"", SortNone},
		{"price-asc", SortNone},
	}

	for _, tt := range tests {
		if got := ParseSortKey(tt.in); got != tt.want {
			t.Errorf("ParseSortKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{1, "#0001"},
		{25, "#0025"},
		{143, "#0143"},
		{1025, "#1025"},
	}

	for _, tt := range tests {
		if got := FormatID(tt.id); got != tt.want {
			t.Errorf("FormatID(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestEntity_PrimaryImage(t *testing.T) {
	e := Entity{Images: []string{"", "https://img.example/25.png"}}
	if got := e.PrimaryImage(); got != "https://img.example/25.png" {
		t.Errorf("PrimaryImage() = %q, want fallback entry", got)
	}

	empty := Entity{Images: []string{"", ""}}
	if got := empty.PrimaryImage(); got != "" {
		t.Errorf("PrimaryImage() on empty chain = %q, want empty", got)
	}
}
