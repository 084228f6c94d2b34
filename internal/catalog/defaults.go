package catalog

import "cinerate/internal/domain"

var defaultMovies = []domain.Movie{
	{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8, Director: "Christopher Nolan"},
	{ID: 2, Title: "The Shawshank Redemption", Year: 1994, Rating: 9.3, Director: "Frank Darabont"},
	{ID: 3, Title: "The Dark Knight", Year: 2008, Rating: 9.0, Director: "Christopher Nolan"},
	{ID: 4, Title: "Pulp Fiction", Year: 1994, Rating: 8.9, Director: "Quentin Tarantino"},
	{ID: 5, Title: "The Godfather", Year: 1972, Rating: 9.2, Director: "Francis Ford Coppola"},
	{ID: 6, Title: "Interstellar", Year: 2014, Rating: 8.6, Director: "Christopher Nolan"},
	{ID: 7, Title: "Fight Club", Year: 1999, Rating: 8.8, Director: "David Fincher"},
	{ID: 8, Title: "The Matrix", Year: 1999, Rating: 8.7, Director: "Lana and Lilly Wachowski"},
	{ID: 9, Title: "Goodfellas", Year: 1990, Rating: 8.7, Director: "Martin Scorsese"},
	{ID: 10, Title: "The Lord of the Rings: The Fellowship of the Ring", Year: 2001, Rating: 8.8, Director: "Peter Jackson"},
}

var defaultTrending = []domain.TrendingMovie{
	{ID: 1, Title: "Inception", Year: 2010, Rating: 8.8, Poster: "https://source.unsplash.com/random/300x450?movie,inception", Genres: []string{"Sci-Fi", "Action", "Thriller"}},
	{ID: 2, Title: "The Shawshank Redemption", Year: 1994, Rating: 9.3, Poster: "https://source.unsplash.com/random/300x450?movie,prison", Genres: []string{"Drama"}},
	{ID: 3, Title: "The Dark Knight", Year: 2008, Rating: 9.0, Poster: "https://source.unsplash.com/random/300x450?movie,batman", Genres: []string{"Action", "Crime", "Drama"}},
	{ID: 4, Title: "Pulp Fiction", Year: 1994, Rating: 8.9, Poster: "https://source.unsplash.com/random/300x450?movie,crime", Genres: []string{"Crime", "Drama"}},
	{ID: 5, Title: "The Godfather", Year: 1972, Rating: 9.2, Poster: "https://source.unsplash.com/random/300x450?movie,mafia", Genres: []string{"Crime", "Drama"}},
	{ID: 6, Title: "Interstellar", Year: 2014, Rating: 8.6, Poster: "https://source.unsplash.com/random/300x450?movie,space", Genres: []string{"Adventure", "Drama", "Sci-Fi"}},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultMovies, WithTrending(defaultTrending))
	if err != nil {
		// built-in data is static
		panic(err)
	}
	return c
}
