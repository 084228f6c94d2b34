package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"cinerate/internal/domain"
)

// fileFormat is the on-disk layout of a catalog file
type fileFormat struct {
	Movies   []domain.Movie         `toml:"movies"`
	Trending []domain.TrendingMovie `toml:"trending"`
	Upcoming []domain.TrendingMovie `toml:"upcoming"`
}

// LoadFile reads a TOML catalog file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML catalog document
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c, err := New(f.Movies, WithTrending(f.Trending), WithUpcoming(f.Upcoming))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

// Encode renders a catalog as a TOML document that Parse accepts
func Encode(c *Catalog) ([]byte, error) {
	data, err := toml.Marshal(fileFormat{
		Movies:   c.Movies(),
		Trending: c.Trending(),
		Upcoming: c.Upcoming(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}
