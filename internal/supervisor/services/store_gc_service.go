// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
)

const defaultGCInterval = 10 * time.Minute

// GarbageCollector is satisfied by *ratings.Store.
type GarbageCollector interface {
	RunGC() error
}

// StoreGCService periodically reclaims rating store value log space.
//
// GC errors do not stop the service; they are logged, counted and the
// next tick tries again. Serve returns only when ctx is canceled.
type StoreGCService struct {
	store    GarbageCollector
	interval time.Duration
	name     string
}

// NewStoreGCService wraps store. A non-positive interval selects 10m.
func NewStoreGCService(store GarbageCollector, interval time.Duration) *StoreGCService {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	return &StoreGCService{
		store:    store,
		interval: interval,
		name:     "rating-store-gc",
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *StoreGCService) runOnce() {
	start := time.Now()
	if err := s.store.RunGC(); err != nil {
		metrics.RecordStoreGC("error")
		logging.Warn().Err(err).Msg("Rating store GC failed")
		return
	}
	metrics.RecordStoreGC("ok")
	logging.Debug().Dur("duration", time.Since(start)).Msg("Rating store GC pass complete")
}

// String implements fmt.Stringer.
func (s *StoreGCService) String() string {
	return s.name
}
