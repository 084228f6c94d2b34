package state

import (
	"cinerate/internal/domain"
)

// Routes the app knows how to render
const (
	RouteHome = "/"
)

// AppState contains all the application state
type AppState struct {
	// Routing
	Route string // current path; anything but RouteHome renders the 404 page

	// Discover section
	Tab        string // "trending" or "upcoming"
	GridCursor int    // focused card in the active tab

	// Hero search
	ResultCursor int           // highlighted dropdown row
	Selected     *domain.Movie // movie shown in the details panel

	// Session-only user data
	UserRatings map[int]int  // movie id -> score 1-10
	Watchlist   map[int]bool // movie id -> on watchlist
	Favorites   map[int]bool // trending id -> hearted

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	StatusMessage string // status bar message
}

// NewAppState creates a new application state
func NewAppState(route, tab string) *AppState {
	if route == "" {
		route = RouteHome
	}
	return &AppState{
		Route:       route,
		Tab:         tab,
		UserRatings: make(map[int]int),
		Watchlist:   make(map[int]bool),
		Favorites:   make(map[int]bool),
	}
}

// IsHome reports whether the home page is the current route
func (s *AppState) IsHome() bool {
	return s.Route == RouteHome
}

// GoHome navigates to the home page and clears page-local state
func (s *AppState) GoHome() {
	s.Route = RouteHome
	s.GridCursor = 0
	s.ResultCursor = 0
}

// Select opens the details panel for m
func (s *AppState) Select(m domain.Movie) {
	s.Selected = &m
	s.ResultCursor = 0
}

// CloseDetails hides the details panel
func (s *AppState) CloseDetails() {
	s.Selected = nil
}

// Rate records score for the selected movie. Scores outside 1-10 are rejected.
func (s *AppState) Rate(score int) (domain.UserRating, bool) {
	if s.Selected == nil || score < 1 || score > 10 {
		return domain.UserRating{}, false
	}
	r := domain.UserRating{MovieID: s.Selected.ID, Score: score}
	s.UserRatings[r.MovieID] = score
	return r, true
}

// ToggleWatchlist flips the selected movie's watchlist flag and returns the new value
func (s *AppState) ToggleWatchlist() (int, bool, bool) {
	if s.Selected == nil {
		return 0, false, false
	}
	id := s.Selected.ID
	if s.Watchlist[id] {
		delete(s.Watchlist, id)
		return id, false, true
	}
	s.Watchlist[id] = true
	return id, true, true
}

// ToggleFavorite flips the heart on a trending card
func (s *AppState) ToggleFavorite(id int) bool {
	if s.Favorites[id] {
		delete(s.Favorites, id)
		return false
	}
	s.Favorites[id] = true
	return true
}

// MoveResultCursor moves the dropdown highlight, clamped to [0, total)
func (s *AppState) MoveResultCursor(delta, total int) {
	s.ResultCursor = clamp(s.ResultCursor+delta, total)
}

// MoveGridCursor moves the card focus inside a grid of cols columns
func (s *AppState) MoveGridCursor(direction string, total, cols int) {
	if total == 0 {
		s.GridCursor = 0
		return
	}
	if cols < 1 {
		cols = 1
	}
	cur := s.GridCursor
	switch direction {
	case "left":
		cur--
	case "right":
		cur++
	case "up":
		if cur-cols >= 0 {
			cur -= cols
		}
	case "down":
		if cur+cols < total {
			cur += cols
		}
	case "home":
		cur = 0
	case "end":
		cur = total - 1
	}
	s.GridCursor = clamp(cur, total)
}

func clamp(v, total int) int {
	if total <= 0 || v < 0 {
		return 0
	}
	if v >= total {
		return total - 1
	}
	return v
}
