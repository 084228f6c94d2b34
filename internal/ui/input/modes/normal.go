package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cinerate/internal/ui/input/types"
)

// BrowseMode handles the home page when the search box is not focused
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, Keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, Keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, Keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, Keys.Tab):
		return []types.Action{types.SwitchTabAction{}}, true
	case key.Matches(msg, Keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	case key.Matches(msg, Keys.Favorite):
		return []types.Action{types.ToggleFavoriteAction{}}, true
	}

	// A "/" that arrived together with the text after it, e.g. a paste
	if rest, ok := searchPrefix(msg); ok {
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeSearch},
			types.TypeTextAction{Text: rest},
		}, true
	}

	if dir := direction(msg); dir != "" {
		return []types.Action{types.MoveCursorAction{Direction: dir}}, true
	}
	return nil, false
}

func searchPrefix(msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) < 2 || msg.Runes[0] != '/' {
		return "", false
	}
	return string(msg.Runes[1:]), true
}

func direction(msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, Keys.Up):
		return "up"
	case key.Matches(msg, Keys.Down):
		return "down"
	case key.Matches(msg, Keys.Left):
		return "left"
	case key.Matches(msg, Keys.Right):
		return "right"
	case key.Matches(msg, Keys.Home):
		return "home"
	case key.Matches(msg, Keys.End):
		return "end"
	}
	return ""
}
