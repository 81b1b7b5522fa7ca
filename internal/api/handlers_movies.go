// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Movies handles GET /api/v1/movies. Optional q matches title, director or
// cast; optional genre filters by exact genre.
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := MovieSearchRequest{
		Query: r.URL.Query().Get("q"),
		Genre: r.URL.Query().Get("genre"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	movies := h.catalog.Search(req.Query, req.Genre)
	respondSuccess(w, r, start, MovieList{
		Movies: movies,
		Total:  len(movies),
		Query:  req.Query,
		Genre:  req.Genre,
	})
}

// Movie handles GET /api/v1/movies/{movieID}.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	movieID := chi.URLParam(r, "movieID")

	movie, err := h.catalog.Get(movieID)
	if err != nil {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Movie not found", nil)
		return
	}

	respondSuccess(w, r, start, movie)
}

// Genres handles GET /api/v1/genres.
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), GenreList{Genres: h.catalog.Genres()})
}
