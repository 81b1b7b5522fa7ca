// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Uptime        float64 `json:"uptime_seconds"`
	CatalogMovies int     `json:"catalog_movies,omitempty"`
	StoredRatings int     `json:"stored_ratings,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// MovieList is the payload of GET /movies.
type MovieList struct {
	Movies []models.Movie `json:"movies"`
	Total  int            `json:"total"`
	Query  string         `json:"query,omitempty"`
	Genre  string         `json:"genre,omitempty"`
}

// GenreList is the payload of GET /genres.
type GenreList struct {
	Genres []string `json:"genres"`
}

// RatingList is the payload of GET /users/{userID}/ratings.
type RatingList struct {
	UserID  string              `json:"user_id"`
	Ratings []models.UserRating `json:"ratings"`
}

// ClearResult is the payload of DELETE /users/{userID}/ratings.
type ClearResult struct {
	UserID  string `json:"user_id"`
	Removed int    `json:"removed"`
}

// DeleteResult is the payload of DELETE /users/{userID}/ratings/{movieID}.
type DeleteResult struct {
	UserID  string `json:"user_id"`
	MovieID string `json:"movie_id"`
	Deleted bool   `json:"deleted"`
}

// RecommendationList is the payload of GET /users/{userID}/recommendations.
type RecommendationList struct {
	UserID          string                     `json:"user_id"`
	Strategy        recommend.Strategy         `json:"strategy"`
	Limit           int                        `json:"limit"`
	ColdStart       bool                       `json:"cold_start"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}
