package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Tagline     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Hero        lipgloss.Style
	SearchBox   lipgloss.Style
	SearchFocus lipgloss.Style
	Badge       lipgloss.Style
	Dropdown    lipgloss.Style
	DropHeader  lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	Star        lipgloss.Style
	Details     lipgloss.Style
	Quote       lipgloss.Style
	RateLow     lipgloss.Style
	RateHigh    lipgloss.Style
	RateActive  lipgloss.Style
	Button      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Card        lipgloss.Style
	CardFocus   lipgloss.Style
	Heart       lipgloss.Style
	Genre       lipgloss.Style
	Footer      lipgloss.Style
	NotFound    lipgloss.Style
	Big         lipgloss.Style
	HelpBox     lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Tagline: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Hero: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SearchFocus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("60")).
			Padding(0, 1).
			MarginRight(1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		DropHeader:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Star:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Details: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 2).
			MarginTop(1),
		Quote:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		RateLow:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		RateHigh:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		RateActive:  lipgloss.NewStyle().Reverse(true).Bold(true),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("99")).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Underline(true).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Heart: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Genre: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Footer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(1, 2).
			MarginTop(1),
		NotFound: lipgloss.NewStyle().Padding(2, 4),
		Big:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// RatingStyle returns the color used for a 1-10 score button
func (s *Styles) RatingStyle(score int) lipgloss.Style {
	if score <= 5 {
		return s.RateLow
	}
	return s.RateHigh
}
