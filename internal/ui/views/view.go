package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"cinerate/internal/domain"
	"cinerate/internal/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	NotFound      bool
	Route         string
	ShowBadges    bool
	SearchInput   string // rendered text input
	SearchFocused bool
	Status        search.Status
	Query         string
	Results       []domain.Movie
	ResultCursor  int
	Spinner       string
	Selected      *domain.Movie
	UserRating    int
	OnWatchlist   bool
	Tab           string
	Cards         []domain.TrendingMovie
	GridCursor    int
	Favorites     map[int]bool
	StatusMessage string
	ShowHelp      bool
	HelpContent   string
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	heroRender  *HeroRenderer
	gridRender  *GridRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		heroRender:  NewHeroRenderer(styles),
		gridRender:  NewGridRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80 // Default terminal width
	}

	var body string
	if state.NotFound {
		body = r.renderNotFound(state.Route)
	} else {
		body = r.renderHome(state, width)
	}

	content := &strings.Builder{}
	content.WriteString(r.styles.Title.Render("🎬 CineRate"))
	content.WriteString("\n")
	content.WriteString(body)
	content.WriteString("\n")
	content.WriteString(r.renderStatusBar(state))

	finalContent := r.styles.Main.Render(content.String())

	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(state.HelpContent, state.Height, width, r.styles.HelpBox)
	}

	return finalContent
}

func (r *Renderer) renderHome(state ViewState, width int) string {
	inner := width - 4 // Main padding
	sections := []string{r.heroRender.RenderHero(state, inner)}

	if state.SearchFocused {
		if dd := r.heroRender.RenderDropdown(state, inner); dd != "" {
			sections = append(sections, dd)
		}
	}

	if state.Selected != nil {
		sections = append(sections, r.heroRender.RenderDetails(*state.Selected, state.UserRating, state.OnWatchlist, inner))
	}

	sections = append(sections,
		r.gridRender.RenderDiscover(state.Tab, state.Cards, state.GridCursor, state.Favorites, inner),
		r.renderFooter(inner),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) renderFooter(width int) string {
	text := lipgloss.JoinVertical(lipgloss.Left,
		r.styles.Heading.Render("Join Our Community"),
		r.styles.Tagline.Render("Create an account to rate movies, build your watchlist, and get personalized recommendations."),
		"",
		r.styles.Button.Render("Sign Up Now"),
	)
	return r.styles.Footer.Width(frameWidth(r.styles.Footer, width)).Render(text)
}

func (r *Renderer) renderNotFound(route string) string {
	text := lipgloss.JoinVertical(lipgloss.Center,
		r.styles.Big.Render("404"),
		"",
		r.styles.Heading.Render("Page Not Found"),
		r.styles.Tagline.Render("The page you're looking for doesn't exist or has been moved. Let's get you back on track."),
		r.styles.Dim.Render(route),
		"",
		r.styles.Button.Render("⌂ Back to Home"),
	)
	return r.styles.NotFound.Render(text)
}

func (r *Renderer) renderStatusBar(state ViewState) string {
	var parts []string
	if state.StatusMessage != "" {
		parts = append(parts, r.styles.Status.Render(state.StatusMessage))
	}
	if state.Keys != nil && !state.ShowHelp {
		parts = append(parts, state.HelpModel.View(state.Keys))
	}
	return strings.Join(parts, "\n")
}

// frameWidth returns the Width value that makes style render exactly total
// cells wide. Width covers padding but not border or margin.
func frameWidth(style lipgloss.Style, total int) int {
	w := total - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
	if w < 10 {
		w = 10
	}
	return w
}

// contentWidth is the room left for text inside style at total cells
func contentWidth(style lipgloss.Style, total int) int {
	return frameWidth(style, total) - style.GetHorizontalPadding()
}
