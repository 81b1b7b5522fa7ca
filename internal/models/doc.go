// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package models defines data structures shared across CineMatch.

Key Components:

  - Movie: Immutable catalog entry (genres, director, cast, tags, external rating)
  - UserRating: A single 1-5 star rating of one movie by one user
  - APIResponse: Standardized API response wrapper
  - APIError: Error details
  - Metadata: Response metadata (timestamp, query time)

Movie and UserRating are produced by the catalog and ratings packages and
consumed read-only by the recommendation engine. None of the types here
carry behavior beyond small helpers; they are safe to copy by value.
*/
package models
