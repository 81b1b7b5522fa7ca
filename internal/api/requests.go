// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Request validation structs with go-playground/validator tags.
//
// The validation tags follow the go-playground/validator v10 syntax, plus the
// custom userid and strategy validators registered by internal/validation:
//
//	req := RecommendationRequest{
//	    UserID:   chi.URLParam(r, "userID"),
//	    Strategy: r.URL.Query().Get("strategy"),
//	    Limit:    limit,
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondAPIError(w, r, http.StatusBadRequest, apiErr)
//	    return
//	}

package api

// UserRequest identifies the user in /users/{userID} routes.
type UserRequest struct {
	UserID string `validate:"required,userid"`
}

// RatingBody is the JSON body of PUT /users/{userID}/ratings/{movieID}.
type RatingBody struct {
	Rating int `json:"rating"`
}

// RatingRequest represents a validated rating submission.
//
// Fields:
//   - UserID: path parameter, store-safe identifier
//   - MovieID: path parameter, must exist in the catalog (checked by the handler)
//   - Rating: 1-5 stars
type RatingRequest struct {
	UserID  string `validate:"required,userid"`
	MovieID string `validate:"required,max=64,excludes=:"`
	Rating  int    `validate:"min=1,max=5"`
}

// RatingRefRequest identifies one stored rating for deletion.
type RatingRefRequest struct {
	UserID  string `validate:"required,userid"`
	MovieID string `validate:"required,max=64,excludes=:"`
}

// RecommendationRequest represents the validated query of GET /recommendations.
//
// Fields:
//   - Strategy: hybrid (default when empty), content or collaborative
//   - Limit: number of movies; values above the configured maximum are clamped
type RecommendationRequest struct {
	UserID   string `validate:"required,userid"`
	Strategy string `validate:"strategy"`
	Limit    int    `validate:"min=0"`
}

// MovieSearchRequest represents the validated query of GET /movies.
type MovieSearchRequest struct {
	Query string `validate:"max=200"`
	Genre string `validate:"max=64"`
}
