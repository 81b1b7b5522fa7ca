// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
)

// readyTimeout bounds the store probe in HealthReady.
const readyTimeout = 2 * time.Second

// HealthLive reports that the process is serving requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), HealthStatus{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady reports whether the catalog is loaded and the rating store
// answers. It returns 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := HealthStatus{
		Status:        "ready",
		Uptime:        time.Since(h.startTime).Seconds(),
		CatalogMovies: h.catalog.Len(),
	}

	if status.CatalogMovies == 0 {
		status.Status = "not_ready"
		status.Error = "catalog is empty"
		h.respondNotReady(w, r, status)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	count, err := h.store.Count(ctx)
	if err != nil {
		status.Status = "not_ready"
		status.Error = "rating store unavailable"
		h.respondNotReady(w, r, status)
		return
	}
	status.StoredRatings = count

	respondSuccess(w, r, start, status)
}

func (h *Handler) respondNotReady(w http.ResponseWriter, r *http.Request, status HealthStatus) {
	respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
		Status:   statusError,
		Data:     status,
		Metadata: metadata(r, time.Time{}),
		Error: &models.APIError{
			Code:    ErrCodeUnavailable,
			Message: status.Error,
		},
	})
}
