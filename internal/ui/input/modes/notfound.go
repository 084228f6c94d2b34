package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cinerate/internal/ui/input/types"
)

// NotFoundMode handles the 404 page
type NotFoundMode struct{}

func NewNotFoundMode() *NotFoundMode {
	return &NotFoundMode{}
}

func (m *NotFoundMode) Name() string {
	return "not_found"
}

func (m *NotFoundMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NotFoundMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NotFoundMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, Keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, Keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, Keys.BackHome):
		return []types.Action{types.GoHomeAction{}}, true
	}
	return nil, false
}
