package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinerate/internal/ui/input/types"
)

// SearchMode is active while the hero search box has focus
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, Keys.Clear):
		return []types.Action{types.ClearQueryAction{}}, true
	case msg.Type == tea.KeyUp:
		return []types.Action{types.MoveCursorAction{Direction: "up"}}, true
	case msg.Type == tea.KeyDown:
		return []types.Action{types.MoveCursorAction{Direction: "down"}}, true
	case key.Matches(msg, Keys.Select):
		if ctx.ResultCount() > 0 {
			return []types.Action{types.SelectResultAction{}}, true
		}
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
