package catalog

import (
	"errors"
	"fmt"
	"strings"

	"cinerate/internal/domain"
)

var (
	ErrDuplicateID  = errors.New("duplicate movie id")
	ErrInvalidMovie = errors.New("invalid movie")
)

// Source is the read-only view of a catalog the search filter depends on
type Source interface {
	Movies() []domain.Movie
	Match(query string) []domain.Movie
}

// Catalog is an immutable, ordered set of movie records plus the discover lists.
// It is built once and shared read-only, so it needs no locking.
type Catalog struct {
	movies   []domain.Movie
	byID     map[int]int // id -> index into movies
	trending []domain.TrendingMovie
	upcoming []domain.TrendingMovie
}

// Option configures a Catalog at construction
type Option func(*Catalog)

// WithTrending sets the trending list shown in the discover grid
func WithTrending(list []domain.TrendingMovie) Option {
	return func(c *Catalog) {
		c.trending = append([]domain.TrendingMovie(nil), list...)
	}
}

// WithUpcoming sets the upcoming list shown in the discover grid
func WithUpcoming(list []domain.TrendingMovie) Option {
	return func(c *Catalog) {
		c.upcoming = append([]domain.TrendingMovie(nil), list...)
	}
}

// New validates movies and returns a catalog that keeps their order
func New(movies []domain.Movie, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		movies: make([]domain.Movie, 0, len(movies)),
		byID:   make(map[int]int, len(movies)),
	}

	for _, m := range movies {
		if err := validate(m); err != nil {
			return nil, err
		}
		if _, exists := c.byID[m.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, m.ID)
		}
		c.byID[m.ID] = len(c.movies)
		c.movies = append(c.movies, m)
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func validate(m domain.Movie) error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: id %d has no title", ErrInvalidMovie, m.ID)
	}
	if m.Rating < 0 || m.Rating > 10 {
		return fmt.Errorf("%w: id %d rating %.1f outside 0-10", ErrInvalidMovie, m.ID, m.Rating)
	}
	return nil
}

// Movies returns a copy of all records in catalog order
func (c *Catalog) Movies() []domain.Movie {
	return append([]domain.Movie(nil), c.movies...)
}

// Trending returns a copy of the trending list
func (c *Catalog) Trending() []domain.TrendingMovie {
	return append([]domain.TrendingMovie(nil), c.trending...)
}

// Upcoming returns a copy of the upcoming list
func (c *Catalog) Upcoming() []domain.TrendingMovie {
	return append([]domain.TrendingMovie(nil), c.upcoming...)
}

// Len returns the number of searchable records
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Get looks a record up by id
func (c *Catalog) Get(id int) (domain.Movie, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Movie{}, false
	}
	return c.movies[idx], true
}

// Match returns every record whose title or director contains query,
// compared in lower case, in catalog order. The result is never nil.
func (c *Catalog) Match(query string) []domain.Movie {
	results := make([]domain.Movie, 0)
	lowerQuery := strings.ToLower(query)
	for _, m := range c.movies {
		if matchesLower(m, lowerQuery) {
			results = append(results, m)
		}
	}
	return results
}

// Matches reports whether a movie's title or director contains query, ignoring case
func Matches(m domain.Movie, query string) bool {
	return matchesLower(m, strings.ToLower(query))
}

func matchesLower(m domain.Movie, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(m.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(m.Director), lowerQuery)
}
