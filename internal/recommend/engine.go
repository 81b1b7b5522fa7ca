// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/models"
)

// Engine produces recommendation snapshots from a catalog and a user's
// ratings. It holds no per-user state.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a new recommendation engine.
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Snapshot partitions movies into those the user rated and the remaining
// candidates. Ratings that reference unknown movie ids are dropped. Neither
// input slice is modified or retained.
func (e *Engine) Snapshot(movies []models.Movie, ratings []models.UserRating) *Snapshot {
	catalog := make([]models.Movie, len(movies))
	copy(catalog, movies)

	byID := make(map[string]int, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = i
	}

	ratedIDs := make(map[string]struct{}, len(ratings))
	rated := make([]ratedMovie, 0, len(ratings))
	for _, r := range ratings {
		ratedIDs[r.MovieID] = struct{}{}
		if idx, ok := byID[r.MovieID]; ok {
			rated = append(rated, ratedMovie{movie: catalog[idx], rating: r.Rating})
		}
	}

	unrated := make([]models.Movie, 0, len(catalog))
	for i := range catalog {
		if _, ok := ratedIDs[catalog[i].ID]; !ok {
			unrated = append(unrated, catalog[i])
		}
	}

	return &Snapshot{
		config:  e.config,
		logger:  e.logger,
		catalog: catalog,
		rated:   rated,
		unrated: unrated,
	}
}

// Snapshot is the read-only view of one user's rating history against the
// catalog. All strategy methods are pure functions of it.
type Snapshot struct {
	config  *Config
	logger  zerolog.Logger
	catalog []models.Movie
	rated   []ratedMovie
	unrated []models.Movie
}

// RatedCount returns the number of ratings that matched a catalog movie.
func (s *Snapshot) RatedCount() int {
	return len(s.rated)
}

// CandidateCount returns the number of catalog movies the user has not rated.
func (s *Snapshot) CandidateCount() int {
	return len(s.unrated)
}

// ColdStart reports whether none of the user's ratings matched the catalog.
func (s *Snapshot) ColdStart() bool {
	return len(s.rated) == 0
}

// Preferences returns the content feature weights of this snapshot.
func (s *Snapshot) Preferences() Preferences {
	return buildPreferences(s.rated)
}

// Recommend runs the named strategy.
func (s *Snapshot) Recommend(strategy Strategy, limit int) ([]Recommendation, error) {
	start := time.Now()

	var (
		recs []Recommendation
		err  error
	)
	switch strategy {
	case StrategyHybrid:
		recs, err = s.Hybrid(limit)
	case StrategyContent:
		recs, err = s.ContentBased(limit)
	case StrategyCollaborative:
		recs, err = s.Collaborative(limit)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(strategy))
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("strategy", strategy.String()).
		Int("limit", limit).
		Int("candidates", len(s.unrated)).
		Int("results", len(recs)).
		Bool("cold_start", s.ColdStart()).
		Dur("duration", time.Since(start)).
		Msg("Generated recommendations")

	return recs, nil
}

// rankAndTruncate orders recs by descending score, keeping input order for
// ties, and cuts the list to limit.
func rankAndTruncate(recs []Recommendation, limit int) []Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}
