// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package ratings persists user movie ratings in BadgerDB.
//
// Each rating is stored under "rating:<userID>:<movieID>" as JSON. Writing a
// rating for a movie the user already rated replaces the earlier one, so a
// user's history holds at most one rating per movie.
package ratings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/models"
)

// Key prefix for BadgerDB storage
const ratingKeyPrefix = "rating:"

// gcDiscardRatio is passed to RunValueLogGC.
const gcDiscardRatio = 0.5

var (
	// ErrRatingNotFound is returned when the user has not rated the movie.
	ErrRatingNotFound = errors.New("rating not found")

	// ErrInvalidRating is returned for ratings outside 1-5 or without a movie id.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidUserID is returned for empty user ids or ids containing ':'.
	ErrInvalidUserID = errors.New("invalid user id")
)

// Config holds rating store options.
type Config struct {
	// Path is the BadgerDB data directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory; nothing survives Close.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool
}

// Store is a BadgerDB-backed rating store. It is safe for concurrent use.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens or creates the rating store described by cfg.
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("storage path is required unless in_memory is set")
		}
		opts = badger.DefaultOptions(cfg.Path)
		opts.SyncWrites = cfg.SyncWrites
		// Ratings are tiny; the default 1GB value log is oversized.
		opts.ValueLogFileSize = 16 << 20
	}
	opts.Logger = nil // Suppress BadgerDB internal logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for ratings: %w", err)
	}

	logger = logger.With().Str("component", "ratings").Logger()
	logger.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Rating store opened")

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunGC reclaims value log space left by overwritten and deleted ratings.
// badger.ErrNoRewrite means there was nothing to collect and is not an error.
func (s *Store) RunGC() error {
	err := s.db.RunValueLogGC(gcDiscardRatio)
	if err == nil || errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

// Put stores r for userID, replacing any previous rating of the same movie.
// A zero timestamp is set to the current time. The stored rating is returned.
func (s *Store) Put(ctx context.Context, userID string, r models.UserRating) (models.UserRating, error) {
	if err := ctx.Err(); err != nil {
		return models.UserRating{}, err
	}
	if err := validateUserID(userID); err != nil {
		return models.UserRating{}, err
	}
	if r.MovieID == "" {
		return models.UserRating{}, fmt.Errorf("%w: movie id is required", ErrInvalidRating)
	}
	if !r.Valid() {
		return models.UserRating{}, fmt.Errorf("%w: rating must be between %d and %d, got %d",
			ErrInvalidRating, models.MinRating, models.MaxRating, r.Rating)
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(r)
	if err != nil {
		return models.UserRating{}, fmt.Errorf("marshal rating: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(ratingKey(userID, r.MovieID), data); err != nil {
			return fmt.Errorf("set rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.UserRating{}, err
	}

	return r, nil
}

// Get returns userID's rating of movieID.
func (s *Store) Get(ctx context.Context, userID, movieID string) (models.UserRating, error) {
	if err := ctx.Err(); err != nil {
		return models.UserRating{}, err
	}
	if err := validateUserID(userID); err != nil {
		return models.UserRating{}, err
	}

	var r models.UserRating
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(ratingKey(userID, movieID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRatingNotFound
		}
		if err != nil {
			return fmt.Errorf("get rating: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return models.UserRating{}, err
	}

	return r, nil
}

// Delete removes userID's rating of movieID.
func (s *Store) Delete(ctx context.Context, userID, movieID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := ratingKey(userID, movieID)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrRatingNotFound
			}
			return fmt.Errorf("get rating: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete rating: %w", err)
		}
		return nil
	})
}

// List returns every rating of userID, oldest first. Ratings with equal
// timestamps are ordered by movie id.
func (s *Store) List(ctx context.Context, userID string) ([]models.UserRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	ratings := make([]models.UserRating, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := userPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r models.UserRating
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return fmt.Errorf("decode rating %s: %w", it.Item().Key(), err)
			}
			ratings = append(ratings, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list user ratings: %w", err)
	}

	sort.SliceStable(ratings, func(i, j int) bool {
		if !ratings[i].Timestamp.Equal(ratings[j].Timestamp) {
			return ratings[i].Timestamp.Before(ratings[j].Timestamp)
		}
		return ratings[i].MovieID < ratings[j].MovieID
	})

	return ratings, nil
}

// Clear removes every rating of userID and returns how many were removed.
func (s *Store) Clear(ctx context.Context, userID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := validateUserID(userID); err != nil {
		return 0, err
	}

	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := userPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan user ratings: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range keys {
		if err := wb.Delete(key); err != nil {
			return 0, fmt.Errorf("delete rating: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("flush rating deletes: %w", err)
	}

	s.logger.Debug().Str("user_id", userID).Int("count", len(keys)).Msg("Cleared user ratings")
	return len(keys), nil
}

// Count returns the total number of stored ratings across all users.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ratingKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})

	return count, err
}

func validateUserID(userID string) error {
	if userID == "" || strings.Contains(userID, ":") {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, userID)
	}
	return nil
}

func userPrefix(userID string) []byte {
	return []byte(ratingKeyPrefix + userID + ":")
}

func ratingKey(userID, movieID string) []byte {
	return []byte(ratingKeyPrefix + userID + ":" + movieID)
}
