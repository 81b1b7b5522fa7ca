// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package models

import "time"

// Rating bounds for UserRating.Rating.
const (
	MinRating = 1
	MaxRating = 5
)

// UserRating is one user's star rating for one movie.
// A rating history holds at most one entry per MovieID; the latest
// submission for a movie replaces any earlier one.
type UserRating struct {
	// MovieID references Movie.ID.
	MovieID string `json:"movie_id"`

	// Rating is the star rating (1-5).
	Rating int `json:"rating"`

	// Timestamp is when the rating was submitted.
	Timestamp time.Time `json:"timestamp"`
}

// Valid reports whether the rating is within the 1-5 star range.
func (r UserRating) Valid() bool {
	return r.Rating >= MinRating && r.Rating <= MaxRating
}
