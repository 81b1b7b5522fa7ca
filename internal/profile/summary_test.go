// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package profile

import (
	"reflect"
	"testing"

	"github.com/tomtom215/cinematch/internal/models"
)

func testMovies() []models.Movie {
	return []models.Movie{
		{ID: "1", Title: "One", Genres: []string{"Drama", "Crime"}},
		{ID: "2", Title: "Two", Genres: []string{"Crime", "Drama"}},
		{ID: "3", Title: "Three", Genres: []string{"Action", "Sci-Fi"}},
		{ID: "4", Title: "Four", Genres: []string{"Action", "Crime"}},
		{ID: "5", Title: "Five", Genres: []string{"Comedy"}},
		{ID: "6", Title: "Six", Genres: []string{"Romance"}},
		{ID: "7", Title: "Seven", Genres: []string{"War"}},
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(testMovies(), nil)

	if s.RatedCount != 0 || s.AverageRating != 0 || s.TopGenre != "" {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
	if s.FavoriteGenres == nil || s.TopRated == nil {
		t.Error("Summarize(nil) returned nil slices, want empty")
	}
}

func TestSummarize(t *testing.T) {
	ratings := []models.UserRating{
		{MovieID: "1", Rating: 4},
		{MovieID: "3", Rating: 2},
		{MovieID: "2", Rating: 5},
		{MovieID: "missing", Rating: 1},
		{MovieID: "4", Rating: 3},
	}
	s := Summarize(testMovies(), ratings)

	if s.RatedCount != 4 {
		t.Errorf("RatedCount = %d, want 4", s.RatedCount)
	}
	if s.AverageRating != 3.5 {
		t.Errorf("AverageRating = %v, want 3.5", s.AverageRating)
	}

	// Crime 3, Drama 2, Action 2, Sci-Fi 1. Drama was seen before Action.
	wantGenres := []GenreCount{{"Crime", 3}, {"Drama", 2}, {"Action", 2}}
	if !reflect.DeepEqual(s.FavoriteGenres, wantGenres) {
		t.Errorf("FavoriteGenres = %v, want %v", s.FavoriteGenres, wantGenres)
	}
	if s.TopGenre != "Crime" {
		t.Errorf("TopGenre = %q, want Crime", s.TopGenre)
	}

	var gotTop []string
	for _, rm := range s.TopRated {
		gotTop = append(gotTop, rm.Movie.ID)
	}
	if want := []string{"2", "1", "4", "3"}; !reflect.DeepEqual(gotTop, want) {
		t.Errorf("TopRated = %v, want %v", gotTop, want)
	}
}

func TestSummarize_TopRatedCapped(t *testing.T) {
	var ratings []models.UserRating
	for _, m := range testMovies() {
		ratings = append(ratings, models.UserRating{MovieID: m.ID, Rating: 3})
	}
	ratings[6].Rating = 5

	s := Summarize(testMovies(), ratings)

	if len(s.TopRated) != topRatedCount {
		t.Fatalf("len(TopRated) = %d, want %d", len(s.TopRated), topRatedCount)
	}
	if s.TopRated[0].Movie.ID != "7" {
		t.Errorf("TopRated[0] = %s, want 7", s.TopRated[0].Movie.ID)
	}
	// Remaining ties keep rating order.
	if s.TopRated[1].Movie.ID != "1" || s.TopRated[5].Movie.ID != "5" {
		t.Errorf("TopRated tie order = %s..%s, want 1..5", s.TopRated[1].Movie.ID, s.TopRated[5].Movie.ID)
	}
}
