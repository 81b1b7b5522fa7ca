// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/validation"
)

// maxBodyBytes bounds request bodies; a rating body is a few bytes.
const maxBodyBytes = 4 << 10

// validateRequest validates v and converts failures to the API error format.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// validationError builds a VALIDATION_ERROR for a single parameter.
func validationError(field, message string) *models.APIError {
	return &models.APIError{
		Code:    ErrCodeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// parseOptionalInt parses an optional integer query parameter. ok is false
// when the parameter is absent or blank.
func parseOptionalInt(r *http.Request, key string) (value int, ok bool, apiErr *models.APIError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, validationError(key, fmt.Sprintf("%s must be an integer", key))
	}
	return n, true, nil
}

// decodeJSONBody decodes a bounded JSON body into dst, rejecting unknown
// fields and trailing data.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) *models.APIError {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return validationError("body", "Request body must be valid JSON")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return validationError("body", "Request body must contain a single JSON object")
	}
	return nil
}
