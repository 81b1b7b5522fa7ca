// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is logged at warn level.
const DefaultSlowRequestThreshold = time.Second

// RequestLogger logs one line per request using the context logger set by
// RequestID. Requests slower than slowThreshold, and server errors, are
// logged at warn or error level; everything else at debug.
func RequestLogger(slowThreshold time.Duration) func(http.Handler) http.Handler {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			var event *zerolog.Event
			switch {
			case sw.status >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > slowThreshold:
				event = logger.Warn().Dur("threshold", slowThreshold)
			default:
				event = logger.Debug()
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Dur("duration", duration).
				Msg("Request completed")
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture status code and body size
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (sw *statusWriter) WriteHeader(code int) {
	if !sw.wroteHeader {
		sw.status = code
		sw.wroteHeader = true
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Write(b []byte) (int, error) {
	sw.wroteHeader = true
	n, err := sw.ResponseWriter.Write(b)
	sw.bytes += n
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}
