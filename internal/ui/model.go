package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"cinerate/internal/catalog"
	"cinerate/internal/config"
	"cinerate/internal/domain"
	"cinerate/internal/eventbus"
	"cinerate/internal/search"
	"cinerate/internal/ui/input"
	"cinerate/internal/ui/input/modes"
	inputtypes "cinerate/internal/ui/input/types"
	"cinerate/internal/ui/state"
	"cinerate/internal/ui/views"
)

// clearStatusMsg clears the status bar if no newer message replaced it
type clearStatusMsg struct {
	seq int
}

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *catalog.Catalog
	search  *search.Service
	state   *state.AppState // centralized state

	statusSeq int

	help    help.Model
	spinner spinner.Model

	renderer     *views.Renderer
	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, cat *catalog.Catalog) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cat == nil {
		cat = catalog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalog:      cat,
		search:       search.NewService(cat, search.WithBus(bus), search.WithDelay(cfg.Debounce())),
		state:        state.NewAppState(cfg.StartRoute, cfg.UISettings.DefaultTab),
		help:         help.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(cfg.Search.Placeholder),
		helpRenderer: NewHelpRenderer(modes.Keys),
		helpOps:      NewHelpOps(nil),
	}

	if !m.state.IsHome() {
		m.inputHandler.ChangeMode(inputtypes.ModeNotFound)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// SearchState exposes the query state for the CLI and tests
func (m *Model) SearchState() search.State {
	return m.search.State()
}

// Selected returns the movie shown in the details panel, if any
func (m *Model) Selected() (domain.Movie, bool) {
	if m.state.Selected == nil {
		return domain.Movie{}, false
	}
	return *m.state.Selected, true
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// The in-app help overlay swallows keys until it is closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		st := m.search.State()
		ctx := &input.ModelContext{
			State:      m.state,
			Results:    m.visibleResults(st),
			QueryValue: m.inputHandler.Query(),
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	st := m.search.State()
	vs := views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		NotFound:      !m.state.IsHome(),
		Route:         m.state.Route,
		ShowBadges:    m.config.UISettings.ShowBadges,
		SearchInput:   m.inputHandler.TextInput().View(),
		SearchFocused: m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Status:        st.Status,
		Query:         st.Query,
		Results:       st.Results,
		ResultCursor:  m.state.ResultCursor,
		Spinner:       m.spinner.View(),
		Selected:      m.state.Selected,
		Tab:           m.state.Tab,
		Cards:         m.cards(),
		GridCursor:    m.state.GridCursor,
		Favorites:     m.state.Favorites,
		StatusMessage: m.state.StatusMessage,
		ShowHelp:      m.state.ShowHelp,
		HelpModel:     m.help,
		Keys:          modes.Keys,
	}
	if m.state.Selected != nil {
		vs.UserRating = m.state.UserRatings[m.state.Selected.ID]
		vs.OnWatchlist = m.state.Watchlist[m.state.Selected.ID]
	}
	if m.state.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent()
	}
	return vs
}

// cards returns the movies of the active Discover tab
func (m *Model) cards() []domain.TrendingMovie {
	if m.state.Tab == config.TabUpcoming {
		return m.catalog.Upcoming()
	}
	return m.catalog.Trending()
}

// visibleResults is the number of selectable dropdown rows
func (m *Model) visibleResults(st search.State) int {
	if st.Status != search.StatusSettled {
		return 0
	}
	return len(st.Results)
}

// scheduleSettle arms the debounce timer for p
func (m *Model) scheduleSettle(p search.Pending) tea.Cmd {
	return tea.Tick(m.search.Delay(), func(time.Time) tea.Msg {
		return searchSettleMsg{pending: p}
	})
}

func (m *Model) setStatus(format string, args ...any) tea.Cmd {
	m.state.StatusMessage = fmt.Sprintf(format, args...)
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateQueryAction:
		wasSearching := m.search.State().Status == search.StatusSearching
		m.state.ResultCursor = 0
		p, ok := m.search.OnQueryChange(a.Text)
		if !ok {
			return nil
		}
		cmds := []tea.Cmd{m.scheduleSettle(p)}
		if !wasSearching {
			cmds = append(cmds, m.spinner.Tick)
		}
		return tea.Batch(cmds...)

	case inputtypes.ClearQueryAction:
		m.search.Clear()
		m.state.ResultCursor = 0

	case inputtypes.BlurSearchAction:
		m.state.ResultCursor = 0

	case inputtypes.MoveCursorAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			total := m.visibleResults(m.search.State())
			switch a.Direction {
			case "up":
				m.state.MoveResultCursor(-1, total)
			case "down":
				m.state.MoveResultCursor(1, total)
			}
			return nil
		}
		m.state.MoveGridCursor(a.Direction, len(m.cards()), views.GridColumns(m.state.Width))

	case inputtypes.SelectResultAction:
		st := m.search.State()
		if m.visibleResults(st) == 0 {
			return nil
		}
		idx := m.state.ResultCursor
		if idx >= len(st.Results) {
			idx = len(st.Results) - 1
		}
		movie, ok := m.search.SelectResult(st.Results[idx].ID)
		if !ok {
			return nil
		}
		m.state.Select(movie)
		m.inputHandler.ResetText()
		m.inputHandler.ChangeMode(inputtypes.ModeDetails)

	case inputtypes.CloseDetailsAction:
		m.state.CloseDetails()
		m.inputHandler.ChangeMode(inputtypes.ModeBrowse)

	case inputtypes.RateAction:
		r, ok := m.state.Rate(a.Score)
		if !ok {
			return nil
		}
		m.publish(eventbus.MovieRatedEvent{Rating: r})
		return m.setStatus("Rated %s %d/10", m.state.Selected.Title, r.Score)

	case inputtypes.ToggleWatchlistAction:
		id, added, ok := m.state.ToggleWatchlist()
		if !ok {
			return nil
		}
		m.publish(eventbus.WatchlistChangedEvent{MovieID: id, Added: added})
		if added {
			return m.setStatus("Added %s to watchlist", m.state.Selected.Title)
		}
		return m.setStatus("Removed %s from watchlist", m.state.Selected.Title)

	case inputtypes.SwitchTabAction:
		if m.state.Tab == config.TabUpcoming {
			m.state.Tab = config.TabTrending
		} else {
			m.state.Tab = config.TabUpcoming
		}
		m.state.GridCursor = 0

	case inputtypes.ToggleFavoriteAction:
		cards := m.cards()
		if m.state.GridCursor < 0 || m.state.GridCursor >= len(cards) {
			return nil
		}
		m.state.ToggleFavorite(cards[m.state.GridCursor].ID)

	case inputtypes.GoHomeAction:
		m.state.GoHome()
		m.inputHandler.ChangeMode(inputtypes.ModeBrowse)

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.helpOps.showHelpCmd(m.helpRenderer.RenderHelpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchSettleMsg:
		if m.search.Settle(msg.pending) {
			m.state.ResultCursor = 0
		}
		return m, nil

	case spinner.TickMsg:
		// Stop the animation once the search settles
		if m.search.State().Status != search.StatusSearching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the overlay
			log.Printf("Help pager failed: %v", msg.err)
			m.state.ShowHelp = true
		}
		return m, nil

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus("Error: %s", e.Message)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
		}
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
