// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/ratings"
)

// UserRatings handles GET /api/v1/users/{userID}/ratings.
// Ratings are ordered by submission time.
func (h *Handler) UserRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := UserRequest{UserID: chi.URLParam(r, "userID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	list, err := h.store.List(r.Context(), req.UserID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load ratings", err)
		return
	}

	respondSuccess(w, r, start, RatingList{UserID: req.UserID, Ratings: list})
}

// PutRating handles PUT /api/v1/users/{userID}/ratings/{movieID}.
// A new rating for an already rated movie replaces the old one.
func (h *Handler) PutRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var body RatingBody
	if apiErr := decodeJSONBody(w, r, &body); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	req := RatingRequest{
		UserID:  chi.URLParam(r, "userID"),
		MovieID: chi.URLParam(r, "movieID"),
		Rating:  body.Rating,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	if !h.catalog.Contains(req.MovieID) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Movie not found", nil)
		return
	}

	stored, err := h.store.Put(r.Context(), req.UserID, models.UserRating{
		MovieID: req.MovieID,
		Rating:  req.Rating,
	})
	metrics.RecordRatingOperation("put", err)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to store rating", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", req.UserID).
		Str("movie_id", req.MovieID).
		Int("rating", req.Rating).
		Msg("Rating stored")

	respondSuccess(w, r, start, stored)
}

// DeleteRating handles DELETE /api/v1/users/{userID}/ratings/{movieID}.
func (h *Handler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RatingRefRequest{
		UserID:  chi.URLParam(r, "userID"),
		MovieID: chi.URLParam(r, "movieID"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	err := h.store.Delete(r.Context(), req.UserID, req.MovieID)
	if errors.Is(err, ratings.ErrRatingNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Rating not found", nil)
		return
	}
	metrics.RecordRatingOperation("delete", err)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to delete rating", err)
		return
	}

	respondSuccess(w, r, start, DeleteResult{UserID: req.UserID, MovieID: req.MovieID, Deleted: true})
}

// ClearRatings handles DELETE /api/v1/users/{userID}/ratings.
func (h *Handler) ClearRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := UserRequest{UserID: chi.URLParam(r, "userID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	removed, err := h.store.Clear(r.Context(), req.UserID)
	metrics.RecordRatingOperation("clear", err)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to clear ratings", err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", req.UserID).
		Int("removed", removed).
		Msg("Ratings cleared")

	respondSuccess(w, r, start, ClearResult{UserID: req.UserID, Removed: removed})
}
