// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog provides the read-only movie catalog.
//
// The catalog is loaded once at startup, either from the embedded default
// catalog or from a JSON file, and is never modified afterwards. All
// accessors return copies of the slice header in catalog order.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/models"
)

//go:embed movies.json
var embeddedMovies []byte

var (
	// ErrMovieNotFound is returned when a movie id is not in the catalog.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrInvalidCatalog is returned when catalog data fails validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Config holds catalog loading options.
type Config struct {
	// Path is a JSON file containing an array of movies.
	// If empty, uses the embedded catalog.
	Path string
}

// Catalog is an immutable, indexed set of movies.
type Catalog struct {
	movies []models.Movie
	byID   map[string]int
	genres []string
}

// Load reads the catalog described by cfg.
func Load(cfg Config) (*Catalog, error) {
	data := embeddedMovies
	if cfg.Path != "" {
		raw, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", cfg.Path, err)
		}
		data = raw
	}

	var movies []models.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return New(movies)
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Load(Config{})
}

// New builds a catalog from movies, rejecting empty and duplicate ids.
// The slice is copied.
func New(movies []models.Movie) (*Catalog, error) {
	c := &Catalog{
		movies: make([]models.Movie, len(movies)),
		byID:   make(map[string]int, len(movies)),
	}
	copy(c.movies, movies)

	seenGenres := make(map[string]struct{})
	for i := range c.movies {
		m := &c.movies[i]
		if m.ID == "" {
			return nil, fmt.Errorf("%w: movie at index %d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate movie id %q", ErrInvalidCatalog, m.ID)
		}
		c.byID[m.ID] = i

		for _, g := range m.Genres {
			if _, ok := seenGenres[g]; !ok {
				seenGenres[g] = struct{}{}
				c.genres = append(c.genres, g)
			}
		}
	}
	sort.Strings(c.genres)

	return c, nil
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// All returns every movie in catalog order.
func (c *Catalog) All() []models.Movie {
	out := make([]models.Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

// Get returns the movie with the given id.
func (c *Catalog) Get(id string) (models.Movie, error) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Movie{}, fmt.Errorf("%w: %s", ErrMovieNotFound, id)
	}
	return c.movies[idx], nil
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Genres returns the distinct genres in alphabetical order.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}
