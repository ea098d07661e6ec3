package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"pokegrid/pkg/catalog"
)

// cardContentWidth is the inner text width of one card.
const cardContentWidth = 26

// statDash is rendered for stats an entity does not carry.
const statDash = "—"

// renderCard draws one entity as a self-contained bordered card: name,
// zero-padded id, the first available image reference, one chip per
// category, the abilities, and one line per canonical stat.
func renderCard(e catalog.Entity) string {
	var lines []string

	name := runewidth.Truncate(e.Name, cardContentWidth, "…")
	lines = append(lines,
		cardNameStyle.Render(name),
		cardIDStyle.Render(catalog.FormatID(e.ID)),
	)

	if img := e.PrimaryImage(); img != "" {
		lines = append(lines, cardImageStyle.Render(runewidth.Truncate(img, cardContentWidth, "…")))
	}

	if len(e.Categories) > 0 {
		chips := make([]string, 0, len(e.Categories))
		for _, c := range e.Categories {
			chips = append(chips, chipFor(c))
		}
		lines = append(lines, strings.Join(chips, " "))
	}

	if len(e.Attributes) > 0 {
		abilities := wordwrap.String(strings.Join(e.Attributes, " · "), cardContentWidth)
		lines = append(lines, abilities)
	}

	lines = append(lines, "")
	for _, stat := range catalog.StatOrder {
		value := statDash
		if v, ok := e.Stat(stat); ok {
			value = fmt.Sprintf("%d", v)
		}
		pad := cardContentWidth - runewidth.StringWidth(stat) - runewidth.StringWidth(value)
		if pad < 1 {
			pad = 1
		}
		lines = append(lines, statNameStyle.Render(stat)+strings.Repeat(" ", pad)+value)
	}

	return cardBorderStyle.Width(cardContentWidth + 2).Render(strings.Join(lines, "\n"))
}

// renderSkeletonCard draws a placeholder card shown while the first page of
// a query is in flight.
func renderSkeletonCard() string {
	bar := strings.Repeat("░", cardContentWidth)
	short := strings.Repeat("░", cardContentWidth/2)
	lines := []string{short, bar, bar, short}
	return skeletonBorderStyle.Width(cardContentWidth + 2).Render(strings.Join(lines, "\n"))
}

// renderGrid lays cards out in rows sized to the available width. Cards are
// appended in the order given; the grid never reorders them.
func renderGrid(cards []string, totalWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	perRow := totalWidth / (cardContentWidth + 4)
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
