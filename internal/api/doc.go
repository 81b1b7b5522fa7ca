// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP REST API layer for CineMatch.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers for the catalog, ratings, recommendations
    and profile endpoints
  - Response formatting: the models.APIResponse envelope on every endpoint
  - Validation: go-playground/validator request structs (requests.go)

Endpoints (all under /api/v1 except /metrics):

	GET    /health/live
	GET    /health/ready
	GET    /movies?q=&genre=
	GET    /movies/{movieID}
	GET    /genres
	GET    /users/{userID}/ratings
	PUT    /users/{userID}/ratings/{movieID}      {"rating": 1-5}
	DELETE /users/{userID}/ratings/{movieID}
	DELETE /users/{userID}/ratings
	GET    /users/{userID}/recommendations?strategy=hybrid&limit=12
	GET    /users/{userID}/profile
	GET    /metrics

Error Codes:

  - VALIDATION_ERROR (400): malformed path, query or body
  - NOT_FOUND (404): unknown movie, or no rating to delete
  - TOO_MANY_REQUESTS (429): rate limit exceeded
  - STORAGE_ERROR (500): rating store failure
  - INTERNAL_ERROR (500): recommendation failure

Each recommendation request reads the user's ratings, builds a fresh
recommend.Snapshot and runs one strategy. Nothing is cached between
requests, so a new rating is reflected immediately.
*/
package api
