package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"cinerate/internal/domain"
)

const (
	cardInnerWidth = 20
	cardGap        = 1
	maxColumns     = 6
)

// Tab labels shown above the Discover grid
var tabLabels = []struct {
	id    string
	label string
}{
	{"trending", "↗ Trending"},
	{"upcoming", "◷ Upcoming"},
}

// GridColumns returns how many cards fit side by side in a terminal this wide
func GridColumns(width int) int {
	cardWidth := cardInnerWidth + 4 // border and padding
	cols := (width - 4 + cardGap) / (cardWidth + cardGap)
	if cols < 1 {
		return 1
	}
	if cols > maxColumns {
		return maxColumns
	}
	return cols
}

// GridRenderer handles the Discover Movies section
type GridRenderer struct {
	styles *Styles
}

// NewGridRenderer creates a new grid renderer
func NewGridRenderer(styles *Styles) *GridRenderer {
	return &GridRenderer{styles: styles}
}

// RenderDiscover renders the section heading, tabs and the card grid
func (g *GridRenderer) RenderDiscover(tab string, cards []domain.TrendingMovie, cursor int, favorites map[int]bool, width int) string {
	var tabs []string
	for _, t := range tabLabels {
		style := g.styles.TabInactive
		if t.id == tab {
			style = g.styles.TabActive
		}
		tabs = append(tabs, style.Render(t.label))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		g.styles.Heading.Render("Discover Movies"),
		"   ",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)

	var grid string
	if len(cards) == 0 {
		grid = g.styles.Dim.Render(fmt.Sprintf("No %s movies yet.", tab))
	} else {
		grid = g.renderGrid(cards, cursor, favorites, GridColumns(width+4))
	}

	return lipgloss.NewStyle().MarginTop(1).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", grid))
}

func (g *GridRenderer) renderGrid(cards []domain.TrendingMovie, cursor int, favorites map[int]bool, cols int) string {
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		var row []string
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, g.RenderCard(cards[i], i == cursor, favorites[cards[i].ID]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderCard renders one movie card. The heart shows on the focused card
// and on favourites.
func (g *GridRenderer) RenderCard(m domain.TrendingMovie, focused, favorite bool) string {
	style := g.styles.Card
	if focused {
		style = g.styles.CardFocus
	}

	heart := " "
	switch {
	case favorite:
		heart = g.styles.Heart.Render("♥")
	case focused:
		heart = g.styles.Heart.Render("♡")
	}

	title := ansi.Truncate(m.Title, cardInnerWidth-2, "…")
	titleLine := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(cardInnerWidth-2).Bold(true).Render(title),
		" ",
		heart,
	)

	lines := []string{
		titleLine,
		fmt.Sprintf("%d  %s", m.Year, g.styles.Star.Render(fmt.Sprintf("★ %.1f", m.Rating))),
		g.styles.Genre.Render(ansi.Truncate(strings.Join(m.Genres, ", "), cardInnerWidth, "…")),
	}

	return style.Width(cardInnerWidth + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}
