// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "github.com/tomtom215/cinematch/internal/models"

// Cold-start baselines used when a user has no ratings that match the
// catalog. Both rank by external rating and score with it directly.

// highlyRated returns the top catalog movies by external rating.
func (s *Snapshot) highlyRated(limit int) []Recommendation {
	recs := make([]Recommendation, 0, len(s.catalog))
	for i := range s.catalog {
		recs = append(recs, popularityRecommendation(s.catalog[i], ReasonHighlyRated))
	}
	return rankAndTruncate(recs, limit)
}

// trending returns the top catalog movies released since the configured year.
func (s *Snapshot) trending(limit int) []Recommendation {
	recs := make([]Recommendation, 0, len(s.catalog))
	for i := range s.catalog {
		if s.catalog[i].Year < s.config.Fallback.TrendingSinceYear {
			continue
		}
		recs = append(recs, popularityRecommendation(s.catalog[i], ReasonTrendingNow))
	}
	return rankAndTruncate(recs, limit)
}

func popularityRecommendation(m models.Movie, reason string) Recommendation {
	return Recommendation{
		Movie:   m,
		Score:   m.Rating,
		Reasons: []string{reason},
	}
}
