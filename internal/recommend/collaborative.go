// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"strings"

	"github.com/tomtom215/cinematch/internal/models"
)

// Collaborative ranks unrated movies by how strongly the user rated their
// genres, boosted by the external rating. It stands in for neighbourhood
// collaborative filtering until multi-user data is available. Without
// usable ratings it falls back to recent highly rated releases.
func (s *Snapshot) Collaborative(limit int) ([]Recommendation, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if s.ColdStart() {
		return s.trending(limit), nil
	}

	genres := buildGenreScores(s.rated)
	top := genres.top(topGenreCount)

	recs := make([]Recommendation, 0, len(s.unrated))
	for i := range s.unrated {
		m := &s.unrated[i]

		var score float64
		for _, genre := range m.Genres {
			if gs, ok := genres.get(genre); ok {
				score += gs
			}
		}
		score += m.Rating

		recs = append(recs, Recommendation{
			Movie:   *m,
			Score:   score,
			Reasons: []string{collaborativeReason(m, top)},
		})
	}

	return rankAndTruncate(recs, limit), nil
}

func collaborativeReason(m *models.Movie, top []string) string {
	matched := make([]string, 0, len(top))
	for _, genre := range m.Genres {
		for _, t := range top {
			if genre == t {
				matched = append(matched, genre)
				break
			}
		}
	}

	if len(matched) == 0 {
		return ReasonTrendingSimilar
	}
	return "popular among fans of " + strings.Join(matched, reasonClauseSep)
}
