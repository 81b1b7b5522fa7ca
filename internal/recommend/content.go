// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"strings"

	"github.com/tomtom215/cinematch/internal/models"
)

// ContentBased ranks unrated movies by feature overlap with the movies the
// user rated. Without usable ratings it falls back to the highest external
// ratings in the catalog.
func (s *Snapshot) ContentBased(limit int) ([]Recommendation, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if s.ColdStart() {
		return s.highlyRated(limit), nil
	}

	prefs := buildPreferences(s.rated)
	w := s.config.Content

	recs := make([]Recommendation, 0, len(s.unrated))
	for i := range s.unrated {
		m := &s.unrated[i]
		recs = append(recs, Recommendation{
			Movie:   *m,
			Score:   contentScore(m, prefs, w),
			Reasons: []string{contentReason(m, prefs)},
		})
	}

	return rankAndTruncate(recs, limit), nil
}

func contentScore(m *models.Movie, prefs Preferences, w ContentWeights) float64 {
	var score float64

	for _, genre := range m.Genres {
		score += prefs.Genres[genre] * w.Genre
	}
	score += prefs.Directors[m.Director] * w.Director
	for _, actor := range m.Cast {
		score += prefs.Actors[actor] * w.Actor
	}
	for _, tag := range m.Tags {
		score += prefs.Tags[tag] * w.Tag
	}
	score += m.Rating / 10 * w.RatingBoost

	return score
}

// contentReason explains the strongest matches: a liked genre, the
// director and a featured cast member, at most two of them.
func contentReason(m *models.Movie, prefs Preferences) string {
	clauses := make([]string, 0, 3)

	for _, genre := range m.Genres {
		if _, ok := prefs.Genres[genre]; ok {
			clauses = append(clauses, "you enjoy "+genre+" films")
			break
		}
	}
	if _, ok := prefs.Directors[m.Director]; ok {
		clauses = append(clauses, "you like "+m.Director+"'s work")
	}
	for _, actor := range m.Cast {
		if _, ok := prefs.Actors[actor]; ok {
			clauses = append(clauses, "features "+actor)
			break
		}
	}

	if len(clauses) == 0 {
		return ReasonHighlyRated
	}
	if len(clauses) > maxContentReasonClause {
		clauses = clauses[:maxContentReasonClause]
	}
	return strings.Join(clauses, reasonClauseSep)
}
