// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limited requests (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommendations_generated_total: Lists generated (counter)
    Labels: strategy, cold_start
  - recommendation_items: Movies per list (histogram)
    Labels: strategy
  - recommendation_duration_seconds: Scoring latency (histogram)
    Labels: strategy

Rating Store Metrics:
  - ratings_submitted_total: Successful mutations (counter)
    Labels: operation (put, delete, clear)
  - rating_store_errors_total: Failed operations (counter)
    Labels: operation
  - rating_store_gc_runs_total: Value log GC passes (counter)
    Labels: result (rewritten, noop, error)

Catalog Metrics:
  - catalog_movies: Loaded catalog size (gauge)

# Usage

	start := time.Now()
	recs, err := snap.Recommend(strategy, limit)
	metrics.RecordRecommendation(strategy.String(), snap.ColdStart(), len(recs), time.Since(start))

Endpoint labels use chi route patterns (/api/v1/movies/{movieID}), never raw
paths, to keep label cardinality bounded.
*/
package metrics
