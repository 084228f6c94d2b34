package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinerate/internal/domain"
	"cinerate/internal/search"
)

const loremQuote = `"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."`

// HeroRenderer draws the search hero, its dropdown and the details panel
type HeroRenderer struct {
	styles *Styles
}

// NewHeroRenderer creates a new hero renderer
func NewHeroRenderer(styles *Styles) *HeroRenderer {
	return &HeroRenderer{styles: styles}
}

// RenderHero renders the heading, search box and badges
func (h *HeroRenderer) RenderHero(state ViewState, width int) string {
	box := h.styles.SearchBox
	if state.SearchFocused {
		box = h.styles.SearchFocus
	}
	inner := contentWidth(h.styles.Hero, width)

	input := state.SearchInput
	switch {
	case state.Query != "":
		input += h.styles.Dim.Render("  × ctrl+u")
	case state.SearchFocused:
		input += h.styles.Dim.Render("  esc to leave search")
	}

	lines := []string{
		h.styles.Heading.Render("Discover and Rate Your Favorite Movies"),
		h.styles.Tagline.Render("Search our extensive database of films, read reviews, and share your ratings with the CineRate community."),
		"",
		box.Width(frameWidth(box, inner)).Render(input),
	}

	if state.ShowBadges {
		badges := lipgloss.JoinHorizontal(lipgloss.Top,
			h.styles.Badge.Render("↗ 200,000+ Movies"),
			h.styles.Badge.Render("★ User Ratings"),
			h.styles.Badge.Render("✪ Award Winners"),
		)
		lines = append(lines, "", badges)
	}

	return h.styles.Hero.Width(frameWidth(h.styles.Hero, width)).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderDropdown renders the search status and results. It returns "" when
// there is nothing to show.
func (h *HeroRenderer) RenderDropdown(state ViewState, width int) string {
	var body string
	switch state.Status {
	case search.StatusSearching:
		body = fmt.Sprintf("%s Searching...", state.Spinner)
	case search.StatusSettled:
		if len(state.Results) == 0 {
			if strings.TrimSpace(state.Query) == "" {
				return ""
			}
			body = fmt.Sprintf("No results found for %q", state.Query)
			break
		}
		lines := []string{h.styles.DropHeader.Render("SEARCH RESULTS")}
		for i, m := range state.Results {
			lines = append(lines, h.renderResult(m, i == state.ResultCursor))
		}
		body = strings.Join(lines, "\n")
	default:
		return ""
	}
	return h.styles.Dropdown.Width(frameWidth(h.styles.Dropdown, width)).Render(body)
}

func (h *HeroRenderer) renderResult(m domain.Movie, focused bool) string {
	marker := "  "
	title := fmt.Sprintf("%s (%d)", m.Title, m.Year)
	if focused {
		marker = h.styles.Highlight.Render("›") + " "
		title = h.styles.Highlight.Render(title)
	}
	return fmt.Sprintf("%s%s  %s  %s", marker, title,
		h.styles.Dim.Render(m.Director),
		h.styles.Star.Render(fmt.Sprintf("★ %.1f", m.Rating)))
}

// RenderDetails renders the selected movie panel
func (h *HeroRenderer) RenderDetails(m domain.Movie, userRating int, onWatchlist bool, width int) string {
	var scores []string
	for score := 1; score <= 10; score++ {
		style := h.styles.RatingStyle(score)
		if score == userRating {
			style = style.Inherit(h.styles.RateActive)
		}
		scores = append(scores, style.Render(fmt.Sprintf(" %d ", score)))
	}

	watch := h.styles.Button.Render("+ Add to Watchlist")
	if onWatchlist {
		watch = h.styles.Button.Render("✓ On Watchlist")
	}

	yours := "Your Rating"
	if userRating > 0 {
		yours = fmt.Sprintf("Your Rating: %d/10", userRating)
	}

	text := lipgloss.JoinVertical(lipgloss.Left,
		h.styles.Heading.Render(fmt.Sprintf("%s (%d)", m.Title, m.Year)),
		h.styles.Tagline.Render("Directed by "+m.Director),
		h.styles.Star.Render(fmt.Sprintf("★ %.1f/10", m.Rating)),
		"",
		yours,
		lipgloss.JoinHorizontal(lipgloss.Top, scores...),
		"",
		watch+h.styles.Dim.Render("  w"),
		"",
		h.styles.Quote.Render(loremQuote),
		"",
		h.styles.Dim.Render("Close Details (esc)"),
	)
	return h.styles.Details.Width(frameWidth(h.styles.Details, width)).Render(text)
}
