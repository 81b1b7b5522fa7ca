// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Content contains the content-based feature multipliers.
	Content ContentWeights `json:"content"`

	// Hybrid contains the blend weights for the hybrid strategy.
	Hybrid HybridWeights `json:"hybrid"`

	// Fallback contains cold-start parameters.
	Fallback FallbackConfig `json:"fallback"`

	// Limits contains result size limits.
	Limits LimitsConfig `json:"limits"`
}

// ContentWeights are the multipliers applied to each accumulated
// preference weight when scoring a candidate.
type ContentWeights struct {
	// Genre multiplies each matching genre weight.
	// Default: 1.0.
	Genre float64 `json:"genre"`

	// Director multiplies the matching director weight.
	// Default: 2.0.
	Director float64 `json:"director"`

	// Actor multiplies each matching cast member weight.
	// Default: 1.5.
	Actor float64 `json:"actor"`

	// Tag multiplies each matching tag weight.
	// Default: 0.5.
	Tag float64 `json:"tag"`

	// RatingBoost scales the external rating normalized to [0, 1].
	// Default: 2.0, which adds 0.2 points per external rating point.
	RatingBoost float64 `json:"rating_boost"`
}

// HybridWeights control how the hybrid strategy blends its inputs.
type HybridWeights struct {
	// Content is the share of the content-based score.
	// Default: 0.6.
	Content float64 `json:"content"`

	// Collaborative is the share of the collaborative score.
	// Default: 0.4.
	Collaborative float64 `json:"collaborative"`

	// CandidateMultiplier sizes each sub-list relative to the requested limit.
	// Default: 2.
	CandidateMultiplier int `json:"candidate_multiplier"`
}

// FallbackConfig contains cold-start parameters.
type FallbackConfig struct {
	// TrendingSinceYear is the earliest release year of a trending movie.
	// Default: 2010.
	TrendingSinceYear int `json:"trending_since_year"`
}

// LimitsConfig contains result size limits.
type LimitsConfig struct {
	// DefaultLimit is used when a caller does not specify a limit.
	// Default: 12.
	DefaultLimit int `json:"default_limit"`

	// MaxLimit caps caller-supplied limits.
	// Default: 100.
	MaxLimit int `json:"max_limit"`
}

// DefaultConfig returns a Config with the standard CineMatch weights.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentWeights{
			Genre:       1.0,
			Director:    2.0,
			Actor:       1.5,
			Tag:         0.5,
			RatingBoost: 2.0,
		},
		Hybrid: HybridWeights{
			Content:             0.6,
			Collaborative:       0.4,
			CandidateMultiplier: 2,
		},
		Fallback: FallbackConfig{
			TrendingSinceYear: 2010,
		},
		Limits: LimitsConfig{
			DefaultLimit: 12,
			MaxLimit:     100,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"content.genre", c.Content.Genre},
		{"content.director", c.Content.Director},
		{"content.actor", c.Content.Actor},
		{"content.tag", c.Content.Tag},
		{"content.rating_boost", c.Content.RatingBoost},
		{"hybrid.content", c.Hybrid.Content},
		{"hybrid.collaborative", c.Hybrid.Collaborative},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", w.name, w.value)
		}
	}

	if c.Hybrid.CandidateMultiplier < 1 {
		return fmt.Errorf("hybrid.candidate_multiplier must be positive, got %d", c.Hybrid.CandidateMultiplier)
	}

	if c.Limits.MaxLimit < 1 {
		return fmt.Errorf("limits.max_limit must be positive, got %d", c.Limits.MaxLimit)
	}
	if c.Limits.DefaultLimit < 0 || c.Limits.DefaultLimit > c.Limits.MaxLimit {
		return fmt.Errorf("limits.default_limit must be in [0, %d], got %d", c.Limits.MaxLimit, c.Limits.DefaultLimit)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs hold value types only.
	clone := *c
	return &clone
}

// ClampLimit caps a caller limit at the configured maximum. Negative values
// are returned unchanged so the strategy can reject them.
func (c *Config) ClampLimit(limit int) int {
	if limit > c.Limits.MaxLimit {
		return c.Limits.MaxLimit
	}
	return limit
}
