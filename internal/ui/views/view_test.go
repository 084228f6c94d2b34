package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"cinerate/internal/domain"
	"cinerate/internal/search"
)

var nolanResults = []domain.Movie{
	{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8, Director: "Christopher Nolan"},
	{ID: 3, Title: "The Dark Knight", Year: 2008, Rating: 9.0, Director: "Christopher Nolan"},
}

func homeState() ViewState {
	return ViewState{
		Width:      100,
		Height:     60,
		ShowBadges: true,
		Tab:        "trending",
		Cards: []domain.TrendingMovie{
			{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8, Genres: []string{"Sci-Fi"}},
			{ID: 2, Title: "The Shawshank Redemption", Year: 1994, Rating: 9.3, Genres: []string{"Drama"}},
		},
		Favorites: map[int]bool{},
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{30, 1},
		{54, 2},
		{80, 3},
		{120, 4},
		{300, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GridColumns(tt.width), "width %d", tt.width)
	}
}

func TestDropdownStates(t *testing.T) {
	r := NewRenderer()

	st := homeState()
	st.SearchFocused = true
	st.Query = "nolan"

	st.Status = search.StatusIdle
	assert.NotContains(t, r.Render(st), "SEARCH RESULTS")

	st.Status = search.StatusSearching
	st.Spinner = "*"
	assert.Contains(t, r.Render(st), "* Searching...")

	st.Status = search.StatusSettled
	st.Results = nolanResults
	view := r.Render(st)
	assert.Contains(t, view, "SEARCH RESULTS")
	assert.Contains(t, view, "› Inception (2010)")
	assert.Contains(t, view, "The Dark Knight (2008)")
	assert.Contains(t, view, "★ 9.0")

	st.Results = nil
	st.Query = "zzz"
	assert.Contains(t, r.Render(st), `No results found for "zzz"`)

	st.SearchFocused = false
	assert.NotContains(t, r.Render(st), "No results found")
}

func TestSettledEmptyBlankQueryShowsNothing(t *testing.T) {
	h := NewHeroRenderer(NewStyles())
	st := homeState()
	st.Status = search.StatusSettled
	st.Query = "   "
	assert.Equal(t, "", h.RenderDropdown(st, 80))
}

func TestDetailsPanel(t *testing.T) {
	h := NewHeroRenderer(NewStyles())

	out := h.RenderDetails(nolanResults[0], 0, false, 90)
	assert.Contains(t, out, "Inception (2010)")
	assert.Contains(t, out, "Directed by Christopher Nolan")
	assert.Contains(t, out, "★ 8.8/10")
	assert.Contains(t, out, "Your Rating")
	assert.Contains(t, out, "Add to Watchlist")
	assert.Contains(t, out, "Lorem ipsum")
	assert.NotContains(t, out, "Your Rating:", "no user score yet")

	out = h.RenderDetails(nolanResults[0], 7, true, 90)
	assert.Contains(t, out, "Your Rating: 7/10")
	assert.Contains(t, out, "On Watchlist")
}

func TestCardHeart(t *testing.T) {
	g := NewGridRenderer(NewStyles())
	m := domain.TrendingMovie{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8}

	assert.NotContains(t, g.RenderCard(m, false, false), "♡")
	assert.Contains(t, g.RenderCard(m, true, false), "♡")
	assert.Contains(t, g.RenderCard(m, false, true), "♥")
}

func TestCardTruncatesLongTitles(t *testing.T) {
	g := NewGridRenderer(NewStyles())
	m := domain.TrendingMovie{Title: "The Lord of the Rings: The Fellowship of the Ring", Year: 2001}

	card := g.RenderCard(m, false, false)
	assert.Contains(t, card, "…")
	assert.Equal(t, cardInnerWidth+4, lipgloss.Width(card))
}

func TestGridReflowsWithWidth(t *testing.T) {
	r := NewRenderer()
	st := homeState()

	st.Width = 120
	wide := r.Render(st)
	st.Width = 40
	narrow := r.Render(st)

	// Side by side cards share one title row; stacked cards do not
	assert.True(t, lineWith(wide, "Inception", "The Shawshank"))
	assert.False(t, lineWith(narrow, "Inception", "The Shawshank"))
}

func lineWith(view string, parts ...string) bool {
	for _, line := range strings.Split(view, "\n") {
		all := true
		for _, p := range parts {
			if !strings.Contains(line, p) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func TestEmptyUpcomingTab(t *testing.T) {
	r := NewRenderer()
	st := homeState()
	st.Tab = "upcoming"
	st.Cards = nil
	assert.Contains(t, r.Render(st), "No upcoming movies yet.")
}

func TestNotFoundPage(t *testing.T) {
	r := NewRenderer()
	view := r.Render(ViewState{Width: 100, Height: 40, NotFound: true, Route: "/missing"})

	assert.Contains(t, view, "404")
	assert.Contains(t, view, "Page Not Found")
	assert.Contains(t, view, "/missing")
	assert.Contains(t, view, "Back to Home")
	assert.NotContains(t, view, "Discover Movies")
}

func TestFooterAndBadges(t *testing.T) {
	r := NewRenderer()
	st := homeState()
	view := r.Render(st)
	assert.Contains(t, view, "Join Our Community")
	assert.Contains(t, view, "Sign Up Now")
	assert.Contains(t, view, "Award Winners")

	st.ShowBadges = false
	assert.NotContains(t, r.Render(st), "Award Winners")
}

func TestHelpOverlayReplacesPage(t *testing.T) {
	r := NewRenderer()
	st := homeState()
	st.ShowHelp = true
	st.HelpContent = "CineRate Help"

	view := r.Render(st)
	assert.Contains(t, view, "CineRate Help")
	assert.NotContains(t, view, "Discover Movies")
}

func TestSearchBoxHints(t *testing.T) {
	r := NewRenderer()
	st := homeState()
	assert.NotContains(t, r.Render(st), "esc to leave search")

	st.SearchFocused = true
	assert.Contains(t, r.Render(st), "esc to leave search")

	st.Query = "x"
	view := r.Render(st)
	assert.Contains(t, view, "× ctrl+u")
	assert.NotContains(t, view, "esc to leave search")
}
