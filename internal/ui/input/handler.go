package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinerate/internal/ui/input/modes"
	"cinerate/internal/ui/input/types"
)

// searchWidth is the visible width of the search box in cells
const searchWidth = 60

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared with the hero search box
}

func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "🔍 "
	ti.CharLimit = 120
	ti.Width = searchWidth

	h := &Handler{
		currentMode: types.ModeBrowse,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeBrowse] = modes.NewBrowseMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeDetails] = modes.NewDetailsMode()
	h.modes[types.ModeNotFound] = modes.NewNotFoundMode()

	return h
}

// HandleKey routes a key press to the current mode. Mode changes are
// applied here; every other action is returned to the caller.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		switch a := action.(type) {
		case types.ChangeModeAction:
			allActions = append(allActions, h.switchMode(a.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		case types.BlurSearchAction:
			next := types.ModeBrowse
			if ctx.HasSelectedMovie() {
				next = types.ModeDetails
			}
			allActions = append(allActions, h.switchMode(next, ctx)...)
			allActions = append(allActions, a)
		case types.ClearQueryAction:
			h.textInput.Reset()
			allActions = append(allActions, a)
		case types.TypeTextAction:
			if !h.isTextMode(h.currentMode) {
				continue
			}
			var typed tea.Cmd
			allActions = append(allActions, h.typeText(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(a.Text)}, &typed)...)
			cmd = tea.Batch(cmd, typed)
		default:
			allActions = append(allActions, action)
		}
	}

	// Keys the search mode did not consume are typed into the box
	if h.isTextMode(h.currentMode) && !consumed {
		allActions = append(allActions, h.typeText(msg, &cmd)...)
	}

	return allActions, cmd
}

// typeText feeds msg to the search box and reports a changed value
func (h *Handler) typeText(msg tea.KeyMsg, cmd *tea.Cmd) []types.Action {
	before := h.textInput.Value()
	*h.textInput, *cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateQueryAction{Text: after}}
	}
	return nil
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		out = append(out, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeBrowse
	}
	return h.currentMode
}

// TextInput returns the shared search box model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Query returns the text currently in the search box
func (h *Handler) Query() string {
	return h.textInput.Value()
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// ChangeMode changes the current input mode without going through a key press
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if h.isTextMode(mode) {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}

// ResetText empties the search box and leaves focus unchanged
func (h *Handler) ResetText() {
	h.textInput.Reset()
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
