// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"strings"

	"github.com/tomtom215/cinematch/internal/models"
)

// Search returns movies whose title, director or any cast member contains
// query (case-insensitive) and, when genre is non-empty, that carry that
// exact genre. A blank query matches every movie. Results keep catalog order.
func (c *Catalog) Search(query, genre string) []models.Movie {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Movie, 0, len(c.movies))
	for i := range c.movies {
		m := &c.movies[i]
		if genre != "" && !m.HasGenre(genre) {
			continue
		}
		if q != "" && !matchesQuery(m, q) {
			continue
		}
		out = append(out, *m)
	}
	return out
}

func matchesQuery(m *models.Movie, q string) bool {
	if strings.Contains(strings.ToLower(m.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Director), q) {
		return true
	}
	for _, actor := range m.Cast {
		if strings.Contains(strings.ToLower(actor), q) {
			return true
		}
	}
	return false
}
