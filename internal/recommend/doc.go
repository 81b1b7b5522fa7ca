// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements the movie recommendation scoring engine.
//
// # Strategies
//
// Three strategies turn a single user's rating history into a ranked list
// of unrated movies:
//
//   - Content: weighted overlap of genres, director, cast and tags with the
//     movies the user already rated, plus a small boost from the external
//     rating
//   - Collaborative: a single-user proxy that scores candidates by how
//     strongly the user rated each of their genres
//   - Hybrid: a weighted blend of both lists (0.6 content, 0.4 collaborative
//     by default) with the reasons of each side kept as separate fragments
//
// A user with no ratings gets a popularity baseline instead: highest
// external rating for content, recent highly rated releases for
// collaborative.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	snap := engine.Snapshot(catalog.All(), userRatings)
//	recs, err := snap.Recommend(recommend.StrategyHybrid, 12)
//
// # Determinism
//
// Every accumulator remembers the order in which keys were first seen and
// every sort is stable, so identical inputs always yield identical output,
// including ties.
//
// # Thread Safety
//
// Engine holds only immutable configuration. A Snapshot is read-only after
// construction. Both are safe for concurrent use.
package recommend
