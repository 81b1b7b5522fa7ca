// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/models"
)

// Strategy names a recommendation strategy.
type Strategy string

const (
	// StrategyHybrid blends content and collaborative scores.
	StrategyHybrid Strategy = "hybrid"

	// StrategyContent scores by feature overlap with rated movies.
	StrategyContent Strategy = "content"

	// StrategyCollaborative scores by the user's per-genre rating totals.
	StrategyCollaborative Strategy = "collaborative"
)

// Strategies returns every supported strategy in display order.
func Strategies() []Strategy {
	return []Strategy{StrategyHybrid, StrategyContent, StrategyCollaborative}
}

// String returns the strategy name.
func (s Strategy) String() string {
	return string(s)
}

// Valid reports whether s is a supported strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyHybrid, StrategyContent, StrategyCollaborative:
		return true
	default:
		return false
	}
}

// ParseStrategy converts a case-insensitive name into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Reason phrases shared by the strategies.
const (
	ReasonHighlyRated      = "highly rated film"
	ReasonTrendingNow      = "trending now"
	ReasonTrendingSimilar  = "trending with similar users"
	contentMatchPrefix     = "Content match: "
	userPatternPrefix      = "User pattern: "
	reasonFragmentSep      = " + "
	reasonClauseSep        = " and "
	maxContentReasonClause = 2
	topGenreCount          = 2
)

// Recommendation is a scored candidate movie.
//
// Reasons holds one fragment per contributing strategy. Content and
// collaborative results carry a single fragment; hybrid results carry one
// or two.
type Recommendation struct {
	Movie   models.Movie `json:"movie"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

// Reason returns the fragments joined into a single display string.
func (r Recommendation) Reason() string {
	return strings.Join(r.Reasons, reasonFragmentSep)
}

// MarshalJSON adds the joined reason next to the fragments.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	type alias Recommendation
	return json.Marshal(struct {
		alias
		Reason string `json:"reason"`
	}{
		alias:  alias(r),
		Reason: r.Reason(),
	})
}
