package search

import (
	"log"
	"strings"
	"time"

	"cinerate/internal/catalog"
	"cinerate/internal/domain"
	"cinerate/internal/eventbus"
)

// Service is the debounced query filter. It owns the query state and a
// single pending slot, and is driven by one actor; it does no locking of
// its own (see Debouncer for a concurrent wrapper).
type Service struct {
	catalog catalog.Source
	bus     eventbus.EventBus
	delay   time.Duration

	state   State
	seq     uint64
	pending *Pending
}

// Option configures a Service
type Option func(*Service)

// WithBus publishes search events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *Service) {
		s.bus = bus
	}
}

// WithDelay sets the debounce window. Negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// NewService creates a filter over the given catalog
func NewService(source catalog.Source, opts ...Option) *Service {
	s := &Service{
		catalog: source,
		delay:   DefaultDelay,
		state: State{
			Results: []domain.Movie{},
			Status:  StatusIdle,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the debounce window callers must wait before settling
func (s *Service) Delay() time.Duration {
	return s.delay
}

// OnQueryChange records new input. A blank query resets to idle and returns
// false. Otherwise the state becomes searching and a new Pending replaces
// whatever occupied the slot; the caller schedules it for Delay().
func (s *Service) OnQueryChange(query string) (Pending, bool) {
	s.state.Query = query

	if strings.TrimSpace(query) == "" {
		s.reset(query)
		return Pending{}, false
	}

	s.seq++
	p := Pending{Seq: s.seq, Query: query}
	s.pending = &p
	s.state.Status = StatusSearching

	s.publish(eventbus.SearchStartedEvent{Query: query})
	return p, true
}

// Settle applies p if it still occupies the pending slot. Results are
// computed for p.Query, the text active when p was issued. Stale pendings
// are dropped and Settle returns false.
func (s *Service) Settle(p Pending) bool {
	if s.pending == nil || s.pending.Seq != p.Seq {
		return false
	}
	s.pending = nil

	var results []domain.Movie
	if s.catalog != nil {
		results = s.catalog.Match(p.Query)
	}
	if results == nil {
		results = []domain.Movie{}
	}

	s.state.Results = results
	s.state.SettledQuery = p.Query
	s.state.Status = StatusSettled

	log.Printf("Search settled for '%s': found %d matches", p.Query, len(results))
	s.publish(eventbus.SearchSettledEvent{Query: p.Query, Count: len(results)})
	return true
}

// SelectResult returns the settled result with the given id and collapses
// the search back to idle. Ids that are not in the settled results are
// ignored.
func (s *Service) SelectResult(id int) (domain.Movie, bool) {
	if s.state.Status != StatusSettled {
		return domain.Movie{}, false
	}

	for _, m := range s.state.Results {
		if m.ID == id {
			s.reset("")
			s.publish(eventbus.MovieSelectedEvent{Movie: m})
			return m, true
		}
	}

	log.Printf("Select ignored: id %d not in results for '%s'", id, s.state.SettledQuery)
	return domain.Movie{}, false
}

// Clear empties the query, as the clear button does
func (s *Service) Clear() {
	s.OnQueryChange("")
}

// State returns a copy of the current query state
func (s *Service) State() State {
	st := s.state
	st.Results = make([]domain.Movie, len(s.state.Results))
	copy(st.Results, s.state.Results)
	return st
}

// Pending returns the occupant of the pending slot, if any
func (s *Service) Pending() (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}
	return *s.pending, true
}

func (s *Service) reset(query string) {
	wasIdle := s.state.Status == StatusIdle && len(s.state.Results) == 0
	s.pending = nil
	s.state = State{
		Query:   query,
		Results: []domain.Movie{},
		Status:  StatusIdle,
	}
	if !wasIdle {
		s.publish(eventbus.SearchClearedEvent{})
	}
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
