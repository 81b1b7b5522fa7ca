// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package profile computes a user's taste summary from their rating history.
package profile

import (
	"sort"

	"github.com/tomtom215/cinematch/internal/models"
)

const (
	favoriteGenreCount = 3
	topRatedCount      = 6
)

// GenreCount is the number of rated movies carrying a genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// RatedMovie is a catalog movie with the user's rating of it.
type RatedMovie struct {
	Movie  models.Movie `json:"movie"`
	Rating int          `json:"rating"`
}

// Summary describes what a user has rated.
type Summary struct {
	RatedCount     int          `json:"rated_count"`
	AverageRating  float64      `json:"average_rating"`
	TopGenre       string       `json:"top_genre,omitempty"`
	FavoriteGenres []GenreCount `json:"favorite_genres"`
	TopRated       []RatedMovie `json:"top_rated"`
}

// Summarize builds the profile summary for ratings against movies.
// Ratings for movies not in the catalog are ignored.
func Summarize(movies []models.Movie, ratings []models.UserRating) Summary {
	byID := make(map[string]int, len(movies))
	for i := range movies {
		byID[movies[i].ID] = i
	}

	rated := make([]RatedMovie, 0, len(ratings))
	for _, r := range ratings {
		if idx, ok := byID[r.MovieID]; ok {
			rated = append(rated, RatedMovie{Movie: movies[idx], Rating: r.Rating})
		}
	}

	s := Summary{
		RatedCount:     len(rated),
		FavoriteGenres: favoriteGenres(rated),
		TopRated:       topRated(rated),
	}

	if len(rated) > 0 {
		var sum int
		for _, rm := range rated {
			sum += rm.Rating
		}
		s.AverageRating = float64(sum) / float64(len(rated))
	}
	if len(s.FavoriteGenres) > 0 {
		s.TopGenre = s.FavoriteGenres[0].Genre
	}

	return s
}

// favoriteGenres counts genre occurrences, highest first, ties by first
// appearance in the rating history.
func favoriteGenres(rated []RatedMovie) []GenreCount {
	counts := make([]GenreCount, 0)
	index := make(map[string]int)
	for _, rm := range rated {
		for _, g := range rm.Movie.Genres {
			if i, ok := index[g]; ok {
				counts[i].Count++
				continue
			}
			index[g] = len(counts)
			counts = append(counts, GenreCount{Genre: g, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > favoriteGenreCount {
		counts = counts[:favoriteGenreCount]
	}
	return counts
}

func topRated(rated []RatedMovie) []RatedMovie {
	top := make([]RatedMovie, len(rated))
	copy(top, rated)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Rating > top[j].Rating
	})
	if len(top) > topRatedCount {
		top = top[:topRatedCount]
	}
	return top
}
