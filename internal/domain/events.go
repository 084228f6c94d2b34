package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchSettled    EventType = "SearchSettled"
	EventSearchCleared    EventType = "SearchCleared"
	EventMovieSelected    EventType = "MovieSelected"
	EventMovieRated       EventType = "MovieRated"
	EventWatchlistChanged EventType = "WatchlistChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a non-blank query puts the filter into searching
type SearchStartedEvent struct {
	Query string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchSettledEvent is emitted when a debounced computation is applied
type SearchSettledEvent struct {
	Query string
	Count int
}

func (e SearchSettledEvent) Type() EventType { return EventSearchSettled }

// SearchClearedEvent is emitted when the query becomes blank
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// MovieSelectedEvent is emitted when a result is picked from the dropdown
type MovieSelectedEvent struct {
	Movie Movie
}

func (e MovieSelectedEvent) Type() EventType { return EventMovieSelected }

// MovieRatedEvent is emitted when the user scores the selected movie
type MovieRatedEvent struct {
	Rating UserRating
}

func (e MovieRatedEvent) Type() EventType { return EventMovieRated }

// WatchlistChangedEvent is emitted when a movie is added to or removed from the watchlist
type WatchlistChangedEvent struct {
	MovieID int
	Added   bool
}

func (e WatchlistChangedEvent) Type() EventType { return EventWatchlistChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
