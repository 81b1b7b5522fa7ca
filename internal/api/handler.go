// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// RatingStore is the persistence the handlers need. *ratings.Store
// implements it.
type RatingStore interface {
	Put(ctx context.Context, userID string, r models.UserRating) (models.UserRating, error)
	List(ctx context.Context, userID string) ([]models.UserRating, error)
	Delete(ctx context.Context, userID, movieID string) error
	Clear(ctx context.Context, userID string) (int, error)
	Count(ctx context.Context) (int, error)
}

// Handler serves the CineMatch API.
type Handler struct {
	catalog   *catalog.Catalog
	store     RatingStore
	engine    *recommend.Engine
	startTime time.Time
}

// NewHandler creates a Handler over a loaded catalog, a rating store and an engine.
func NewHandler(cat *catalog.Catalog, store RatingStore, engine *recommend.Engine) *Handler {
	return &Handler{
		catalog:   cat,
		store:     store,
		engine:    engine,
		startTime: time.Now(),
	}
}
