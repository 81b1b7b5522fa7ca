// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinematch/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	slowRequest   time.Duration
}

// NewRouter creates a Router. A nil config uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, config *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(config),
		slowRequest:   middleware.DefaultSlowRequestThreshold,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(router.slowRequest))
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.Compression)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	// Not rate limited so that probes never fail under load.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Data Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/movies", router.handler.Movies)
			r.Get("/movies/{movieID}", router.handler.Movie)
			r.Get("/genres", router.handler.Genres)

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Get("/ratings", router.handler.UserRatings)
				r.Delete("/ratings", router.handler.ClearRatings)
				r.Put("/ratings/{movieID}", router.handler.PutRating)
				r.Delete("/ratings/{movieID}", router.handler.DeleteRating)
				r.Get("/recommendations", router.handler.Recommendations)
				r.Get("/profile", router.handler.Profile)
			})
		})
	})

	// ========================
	// Prometheus Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	return r
}
