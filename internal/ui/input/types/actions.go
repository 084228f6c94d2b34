package types

// Navigation actions
type MoveCursorAction struct {
	Direction string // "up", "down", "left", "right", "home", "end"
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// BlurSearchAction leaves the search box; the model picks the mode to return to
type BlurSearchAction struct{}

func (a BlurSearchAction) Type() string { return "blur_search" }

// Search actions
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

// TypeTextAction inserts text into the search box as if it were typed
type TypeTextAction struct {
	Text string
}

func (a TypeTextAction) Type() string { return "type_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

type SelectResultAction struct{}

func (a SelectResultAction) Type() string { return "select_result" }

// Details actions
type CloseDetailsAction struct{}

func (a CloseDetailsAction) Type() string { return "close_details" }

type RateAction struct {
	Score int // 1-10
}

func (a RateAction) Type() string { return "rate" }

type ToggleWatchlistAction struct{}

func (a ToggleWatchlistAction) Type() string { return "toggle_watchlist" }

// Discover grid actions
type SwitchTabAction struct{}

func (a SwitchTabAction) Type() string { return "switch_tab" }

// ToggleFavoriteAction flips the heart on the focused card
type ToggleFavoriteAction struct{}

func (a ToggleFavoriteAction) Type() string { return "toggle_favorite" }

// Routing actions
type GoHomeAction struct{}

func (a GoHomeAction) Type() string { return "go_home" }

// Misc actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
