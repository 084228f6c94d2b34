package ui

import (
	"cinerate/internal/eventbus"
	"cinerate/internal/search"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchSettleMsg is delivered when a debounce window closes
type searchSettleMsg struct {
	pending search.Pending
}

// helpPagerMsg contains the result of the help pager
type helpPagerMsg struct {
	err error
}
