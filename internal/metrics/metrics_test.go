// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/v1/movies", "200", 3*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+2 {
		t.Errorf("after two increments = %v, want %v", got, before+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after two decrements = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name      string
		strategy  string
		coldStart bool
		label     string
	}{
		{"warm hybrid", "hybrid", false, "false"},
		{"cold content", "content", true, "true"},
		{"cold collaborative", "collaborative", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := RecommendationsGenerated.WithLabelValues(tt.strategy, tt.label)
			before := testutil.ToFloat64(counter)

			RecordRecommendation(tt.strategy, tt.coldStart, 12, 50*time.Microsecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("recommendations_generated_total{%s,%s} = %v, want %v", tt.strategy, tt.label, got, before+1)
			}
		})
	}
}

func TestRecordRatingOperation(t *testing.T) {
	ok := RatingsSubmitted.WithLabelValues("put")
	failed := RatingStoreErrors.WithLabelValues("put")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordRatingOperation("put", nil)
	RecordRatingOperation("put", errors.New("disk full"))

	if got := testutil.ToFloat64(ok); got != okBefore+1 {
		t.Errorf("ratings_submitted_total = %v, want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(failed); got != failedBefore+1 {
		t.Errorf("rating_store_errors_total = %v, want %v", got, failedBefore+1)
	}
}

func TestSetCatalogSize(t *testing.T) {
	SetCatalogSize(12)
	if got := testutil.ToFloat64(CatalogMovies); got != 12 {
		t.Errorf("catalog_movies = %v, want 12", got)
	}
}

func TestRecordStoreGC(t *testing.T) {
	counter := RatingStoreGCRuns.WithLabelValues("ok")
	before := testutil.ToFloat64(counter)

	RecordStoreGC("ok")

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("rating_store_gc_runs_total = %v, want %v", got, before+1)
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordRateLimitHit("/api/v1/movies")
	RecordRecommendation("hybrid", false, 3, time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint() error = %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem in %s: %s", p.Metric, p.Text)
	}

	if n := testutil.CollectAndCount(RecommendationsGenerated); n == 0 {
		t.Error("recommendations_generated_total has no series")
	}
}
