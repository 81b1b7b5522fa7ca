// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/tomtom215/cinematch/internal/logging"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// validUpstreamID limits what an upstream proxy may inject into logs.
var validUpstreamID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// RequestID middleware assigns each request an ID, echoes it in the
// response header and stores it, a fresh correlation ID and a request
// scoped logger in the request context.
//
// An X-Request-ID sent by an upstream proxy is kept when it is well formed.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if !validUpstreamID.MatchString(requestID) {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, logging.GenerateCorrelationID())
		ctx = logging.ContextWithLogger(ctx, logging.WithComponent("api"))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}
