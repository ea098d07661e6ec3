package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokegrid/pkg/catalog"
)

func TestRenderCard(t *testing.T) {
	e := catalog.Entity{
		ID:         25,
		Name:       "pikachu",
		Categories: []string{"electric"},
		Attributes: []string{"static", "lightning-rod"},
		Stats: map[string]int{
			"hp":     35,
			"attack": 55,
			"speed":  90,
		},
		Images: []string{"https://example.test/pikachu.png"},
	}

	card := renderCard(e)

	assert.Contains(t, card, "pikachu")
	assert.Contains(t, card, "#0025")
	assert.Contains(t, card, "electric")
	assert.Contains(t, card, "static")
	assert.Contains(t, card, "35")
	assert.Contains(t, card, "90")
}

func TestRenderCardMissingStatShowsDash(t *testing.T) {
	e := catalog.Entity{
		ID:    1,
		Name:  "bulbasaur",
		Stats: map[string]int{"hp": 45},
	}

	card := renderCard(e)

	assert.Contains(t, card, statDash)
	assert.Contains(t, card, "45")
}

func TestRenderCardTruncatesLongName(t *testing.T) {
	e := catalog.Entity{
		ID:   1,
		Name: strings.Repeat("x", 60),
	}

	card := renderCard(e)

	assert.NotContains(t, card, e.Name)
	assert.Contains(t, card, strings.Repeat("x", 10))
}

func TestRenderSkeletonCardNonEmpty(t *testing.T) {
	card := renderSkeletonCard()
	assert.NotEmpty(t, card)
	assert.Contains(t, card, "░")
}

func TestRenderGridRowSplit(t *testing.T) {
	cards := []string{
		renderSkeletonCard(),
		renderSkeletonCard(),
		renderSkeletonCard(),
	}

	// Wide enough for all three on one row.
	wide := renderGrid(cards, 200)
	// Only wide enough for one per row.
	narrow := renderGrid(cards, 30)

	assert.Greater(t, strings.Count(narrow, "\n"), strings.Count(wide, "\n"))
}

func TestRenderGridEmpty(t *testing.T) {
	assert.Empty(t, renderGrid(nil, 120))
}

func TestChipForUnknownCategory(t *testing.T) {
	assert.NotEmpty(t, chipFor("mystery"))
	assert.Contains(t, chipFor("fire"), "fire")
}
