// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/profile"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommendations handles GET /api/v1/users/{userID}/recommendations.
//
// Query parameters:
//   - strategy: hybrid (default), content or collaborative
//   - limit: 0 or more; default and maximum come from the engine config
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cfg := h.engine.Config()

	limit, ok, apiErr := parseOptionalInt(r, "limit")
	if apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}
	if !ok {
		limit = cfg.Limits.DefaultLimit
	}

	req := RecommendationRequest{
		UserID:   chi.URLParam(r, "userID"),
		Strategy: strings.TrimSpace(r.URL.Query().Get("strategy")),
		Limit:    limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	strategy := recommend.StrategyHybrid
	if req.Strategy != "" {
		parsed, err := recommend.ParseStrategy(req.Strategy)
		if err != nil {
			respondAPIError(w, r, http.StatusBadRequest, validationError("strategy", err.Error()))
			return
		}
		strategy = parsed
	}
	limit = cfg.ClampLimit(req.Limit)

	history, err := h.store.List(r.Context(), req.UserID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load ratings", err)
		return
	}

	snap := h.engine.Snapshot(h.catalog.All(), history)
	scoreStart := time.Now()
	recs, err := snap.Recommend(strategy, limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Failed to generate recommendations", err)
		return
	}
	metrics.RecordRecommendation(strategy.String(), snap.ColdStart(), len(recs), time.Since(scoreStart))

	respondSuccess(w, r, start, RecommendationList{
		UserID:          req.UserID,
		Strategy:        strategy,
		Limit:           limit,
		ColdStart:       snap.ColdStart(),
		Recommendations: recs,
	})
}

// Profile handles GET /api/v1/users/{userID}/profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := UserRequest{UserID: chi.URLParam(r, "userID")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	history, err := h.store.List(r.Context(), req.UserID)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeStorage, "Failed to load ratings", err)
		return
	}

	respondSuccess(w, r, start, profile.Summarize(h.catalog.All(), history))
}
