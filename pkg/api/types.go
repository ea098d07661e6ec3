package api

import "pokegrid/pkg/catalog"

// NamedRef is the {name, url} reference pair the API uses throughout.
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListingPage is one page of the paginated entity listing.
type ListingPage struct {
	Count   int        `json:"count"`
	Next    string     `json:"next"`
	Results []NamedRef `json:"results"`
}

// TypeList enumerates all categories.
type TypeList struct {
	Results []NamedRef `json:"results"`
}

// TypeDetail is a category document; only the membership list is consumed.
type TypeDetail struct {
	Pokemon []TypeMember `json:"pokemon"`
}

// TypeMember wraps one member reference inside a category document.
type TypeMember struct {
	Pokemon NamedRef `json:"pokemon"`
}

// PokemonDetail is the subset of a detail document this application reads.
type PokemonDetail struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Slot int      `json:"slot"`
		Type NamedRef `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Ability NamedRef `json:"ability"`
	} `json:"abilities"`
	Stats []struct {
		BaseStat int      `json:"base_stat"`
		Stat     NamedRef `json:"stat"`
	} `json:"stats"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		Other        struct {
			OfficialArtwork struct {
				FrontDefault string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// Entity converts the wire document into the domain model. The image chain
// prefers the official artwork and falls back to the default sprite.
func (d *PokemonDetail) Entity() catalog.Entity {
	e := catalog.Entity{
		ID:    d.ID,
		Name:  d.Name,
		Stats: make(map[string]int, len(d.Stats)),
		Images: []string{
			d.Sprites.Other.OfficialArtwork.FrontDefault,
			d.Sprites.FrontDefault,
		},
	}
	for _, t := range d.Types {
		e.Categories = append(e.Categories, t.Type.Name)
	}
	for _, a := range d.Abilities {
		e.Attributes = append(e.Attributes, a.Ability.Name)
	}
	for _, s := range d.Stats {
		e.Stats[s.Stat.Name] = s.BaseStat
	}
	return e
}
