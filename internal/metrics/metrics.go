// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Total number of recommendation lists generated",
		},
		[]string{"strategy", "cold_start"},
	)

	RecommendationItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_items",
			Help:    "Number of movies returned per recommendation list",
			Buckets: []float64{0, 1, 3, 6, 12, 25, 50, 100},
		},
		[]string{"strategy"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "recommendation_duration_seconds",
			Help: "Time spent scoring one recommendation request",
			// Scoring is in-memory over a small catalog.
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"strategy"},
	)

	// Rating Store Metrics
	RatingsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_submitted_total",
			Help: "Total number of rating store mutations",
		},
		[]string{"operation"}, // "put", "delete", "clear"
	)

	RatingStoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rating_store_errors_total",
			Help: "Total number of rating store failures",
		},
		[]string{"operation"},
	)

	RatingStoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rating_store_gc_runs_total",
			Help: "Total number of value log GC runs",
		},
		[]string{"result"}, // "ok", "error"
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)
)

// RecordAPIRequest records API request metrics
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one generated recommendation list
func RecordRecommendation(strategy string, coldStart bool, items int, duration time.Duration) {
	RecommendationsGenerated.WithLabelValues(strategy, strconv.FormatBool(coldStart)).Inc()
	RecommendationItems.WithLabelValues(strategy).Observe(float64(items))
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordRatingOperation records a rating store mutation and its outcome
func RecordRatingOperation(operation string, err error) {
	if err != nil {
		RatingStoreErrors.WithLabelValues(operation).Inc()
		return
	}
	RatingsSubmitted.WithLabelValues(operation).Inc()
}

// RecordStoreGC records the result of a value log GC pass
func RecordStoreGC(result string) {
	RatingStoreGCRuns.WithLabelValues(result).Inc()
}

// SetCatalogSize records the number of loaded movies
func SetCatalogSize(n int) {
	CatalogMovies.Set(float64(n))
}
