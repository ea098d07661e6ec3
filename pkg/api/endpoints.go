package api

import (
	"context"
	"fmt"
	"net/url"
)

// Logical endpoint labels for metrics.
const (
	endpointListing    = "listing"
	endpointCategory   = "category"
	endpointCategories = "categories"
	endpointDetail     = "detail"
)

// ListPokemon fetches one page of the entity listing.
func (c *Client) ListPokemon(ctx context.Context, offset, limit int) (*ListingPage, error) {
	var page ListingPage
	path := fmt.Sprintf("/pokemon?offset=%d&limit=%d", offset, limit)
	if err := c.GetJSON(ctx, endpointListing, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListTypes enumerates all category names, in API order.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	var list TypeList
	if err := c.GetJSON(ctx, endpointCategories, "/type", &list); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list.Results))
	for _, r := range list.Results {
		names = append(names, r.Name)
	}
	return names, nil
}

// TypeMembers fetches the full membership list of one category.
func (c *Client) TypeMembers(ctx context.Context, name string) ([]NamedRef, error) {
	var detail TypeDetail
	path := "/type/" + url.PathEscape(name)
	if err := c.GetJSON(ctx, endpointCategory, path, &detail); err != nil {
		return nil, err
	}
	refs := make([]NamedRef, 0, len(detail.Pokemon))
	for _, m := range detail.Pokemon {
		refs = append(refs, m.Pokemon)
	}
	return refs, nil
}

// PokemonByKey fetches one detail document by name or numeric id.
func (c *Client) PokemonByKey(ctx context.Context, key string) (*PokemonDetail, error) {
	var detail PokemonDetail
	path := "/pokemon/" + url.PathEscape(key)
	if err := c.GetJSON(ctx, endpointDetail, path, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
