// Package catalog defines the domain model for browsable catalog entries
// and the sort pipeline applied to result batches.
package catalog

import "fmt"

// Entity is a fully resolved catalog entry. An entity is fetched once per
// identifier, cached for the session, and never mutated afterwards.
type Entity struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Categories []string       `json:"categories"` // type names, in API slot order
	Attributes []string       `json:"attributes"` // ability names, in API order
	Stats      map[string]int `json:"stats"`
	Images     []string       `json:"images"` // image references, best first
}

// StatOrder is the canonical display order for base stats. A stat missing
// from an entity renders as a placeholder dash.
var StatOrder = []string{
	"hp",
	"attack",
	"defense",
	"special-attack",
	"special-defense",
	"speed",
}

// FormatID renders the zero-padded display id ("#0025").
func FormatID(id int) string {
	return fmt.Sprintf("#%04d", id)
}

// PrimaryImage returns the first usable reference from the image fallback
// chain, or "" if the entity has none.
func (e Entity) PrimaryImage() string {
	for _, img := range e.Images {
		if img != "" {
			return img
		}
	}
	return ""
}

// Stat returns the named stat value and whether the entity carries it.
func (e Entity) Stat(name string) (int, bool) {
	v, ok := e.Stats[name]
	return v, ok
}
