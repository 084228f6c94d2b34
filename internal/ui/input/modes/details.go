package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cinerate/internal/ui/input/types"
)

// DetailsMode handles the selected-movie panel
type DetailsMode struct {
	browse *BrowseMode
}

func NewDetailsMode() *DetailsMode {
	return &DetailsMode{browse: NewBrowseMode()}
}

func (m *DetailsMode) Name() string {
	return "details"
}

func (m *DetailsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, Keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, Keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, Keys.Rate):
		if score := rateScore(msg.String()); score > 0 {
			return []types.Action{types.RateAction{Score: score}}, true
		}
	case key.Matches(msg, Keys.Watchlist):
		return []types.Action{types.ToggleWatchlistAction{}}, true
	case key.Matches(msg, Keys.Close):
		return []types.Action{types.CloseDetailsAction{}}, true
	case key.Matches(msg, Keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	}
	// The Discover grid stays navigable under the panel
	return m.browse.HandleKey(msg, ctx)
}
