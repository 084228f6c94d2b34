package input

import (
	"cinerate/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Results    int
	QueryValue string
}

// ResultCount returns the number of settled results in the dropdown
func (c *ModelContext) ResultCount() int {
	return c.Results
}

// HasSelectedMovie reports whether the details panel is showing
func (c *ModelContext) HasSelectedMovie() bool {
	return c.State != nil && c.State.Selected != nil
}

// Query returns the raw search box text
func (c *ModelContext) Query() string {
	return c.QueryValue
}
