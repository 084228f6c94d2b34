package search

import (
	"time"

	"cinerate/internal/domain"
)

// DefaultDelay is the debounce window applied when none is configured
const DefaultDelay = 500 * time.Millisecond

// Status is the lifecycle of the query state
type Status int

const (
	StatusIdle Status = iota
	StatusSearching
	StatusSettled
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSearching:
		return "searching"
	case StatusSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// State holds the query state
type State struct {
	Query        string         // current raw input
	SettledQuery string         // query the results were computed for
	Results      []domain.Movie // subset of the catalog, catalog order
	Status       Status
}

// Pending is a scheduled, not yet applied computation. Only the most
// recently issued Pending can settle.
type Pending struct {
	Seq   uint64
	Query string
}
