// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

// Movie is a catalog entry. Movies are loaded once at startup and never
// mutated afterwards; ID is unique within a catalog.
type Movie struct {
	// ID is the unique movie identifier.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Genres lists genre labels. Order is preserved for reason text.
	Genres []string `json:"genre"`

	// Director is the director's name.
	Director string `json:"director"`

	// Year is the release year.
	Year int `json:"year"`

	// Rating is the canonical external rating (0-10).
	Rating float64 `json:"rating"`

	// Duration is the runtime in minutes.
	Duration int `json:"duration"`

	// Poster is the poster image URL (display only).
	Poster string `json:"poster,omitempty"`

	// Description is the synopsis.
	Description string `json:"description"`

	// Cast lists actor names in billing order.
	Cast []string `json:"cast"`

	// Tags are free-form descriptive keywords.
	Tags []string `json:"tags"`
}

// HasGenre reports whether the movie is labeled with the given genre.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
