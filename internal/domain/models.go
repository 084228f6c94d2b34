package domain

// Movie is a catalog record. Values are never mutated after the catalog is built.
type Movie struct {
	ID       int     `toml:"id"`
	Title    string  `toml:"title"`
	Year     int     `toml:"year"`
	Rating   float64 `toml:"rating"` // 0-10
	Director string  `toml:"director"`
}

// TrendingMovie is an entry in the discover grid
type TrendingMovie struct {
	ID     int      `toml:"id"`
	Title  string   `toml:"title"`
	Year   int      `toml:"year"`
	Rating float64  `toml:"rating"`
	Poster string   `toml:"poster"`
	Genres []string `toml:"genres"`
}

// UserRating is the session-only score a user gave a movie (1-10)
type UserRating struct {
	MovieID int
	Score   int
}
