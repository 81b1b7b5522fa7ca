// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"sort"

	"github.com/tomtom215/cinematch/internal/models"
)

// ratedMovie pairs a catalog movie with the user's rating of it.
type ratedMovie struct {
	movie  models.Movie
	rating int
}

// Preferences holds the content feature weights learned from one user's
// ratings. Each rated movie contributes rating/5 to every genre, cast
// member and tag it carries and to its director.
type Preferences struct {
	Genres    map[string]float64
	Directors map[string]float64
	Actors    map[string]float64
	Tags      map[string]float64
}

func buildPreferences(rated []ratedMovie) Preferences {
	prefs := Preferences{
		Genres:    make(map[string]float64),
		Directors: make(map[string]float64),
		Actors:    make(map[string]float64),
		Tags:      make(map[string]float64),
	}

	for _, rm := range rated {
		weight := float64(rm.rating) / float64(models.MaxRating)

		for _, genre := range rm.movie.Genres {
			prefs.Genres[genre] += weight
		}
		prefs.Directors[rm.movie.Director] += weight
		for _, actor := range rm.movie.Cast {
			prefs.Actors[actor] += weight
		}
		for _, tag := range rm.movie.Tags {
			prefs.Tags[tag] += weight
		}
	}

	return prefs
}

// genreScores sums raw ratings per genre and remembers the order in which
// genres were first seen, so ties resolve the same way on every call.
type genreScores struct {
	order  []string
	scores map[string]float64
}

func buildGenreScores(rated []ratedMovie) *genreScores {
	gs := &genreScores{scores: make(map[string]float64)}
	for _, rm := range rated {
		for _, genre := range rm.movie.Genres {
			if _, seen := gs.scores[genre]; !seen {
				gs.order = append(gs.order, genre)
			}
			gs.scores[genre] += float64(rm.rating)
		}
	}
	return gs
}

func (gs *genreScores) get(genre string) (float64, bool) {
	score, ok := gs.scores[genre]
	return score, ok
}

// top returns up to n genres by descending score, ties by first appearance.
func (gs *genreScores) top(n int) []string {
	ranked := make([]string, len(gs.order))
	copy(ranked, gs.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return gs.scores[ranked[i]] > gs.scores[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
