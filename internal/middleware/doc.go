// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware for the CineMatch API.

All middleware use the standard func(http.Handler) http.Handler shape and
compose with chi's router.Use:

  - RequestID: request and correlation IDs, request scoped zerolog logger
  - RequestLogger: one structured log line per request, slow request warnings
  - PrometheusMetrics: api_requests_total, api_request_duration_seconds,
    api_active_requests labelled by chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

Recommended order:

	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(time.Second))
	r.Use(middleware.Compression)

PrometheusMetrics is mounted on the API route group so that the route
pattern is resolved when the metric is recorded.
*/
package middleware
