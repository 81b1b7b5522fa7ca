// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLimit is returned when a negative result limit is requested.
	ErrInvalidLimit = errors.New("recommend: limit must be non-negative")

	// ErrUnknownStrategy is returned by ParseStrategy for unsupported names.
	ErrUnknownStrategy = errors.New("recommend: unknown strategy")
)

func validateLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, limit)
	}
	return nil
}
