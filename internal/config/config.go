// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/ratings"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file
//  3. Environment Variables: Override any mapped setting
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Storage   StorageConfig   `koanf:"storage"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file:line in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// LoggerConfig converts to the logging package configuration.
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// StorageConfig holds rating store settings
type StorageConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	SyncWrites bool          `koanf:"sync_writes"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// StoreConfig converts to the ratings package configuration.
func (s StorageConfig) StoreConfig() ratings.Config {
	return ratings.Config{
		Path:       s.Path,
		InMemory:   s.InMemory,
		SyncWrites: s.SyncWrites,
	}
}

// CatalogConfig holds movie catalog settings. An empty Path selects the
// embedded catalog.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// LoaderConfig converts to the catalog package configuration.
func (c CatalogConfig) LoaderConfig() catalog.Config {
	return catalog.Config{Path: c.Path}
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig holds recommendation engine settings. Zero weights are
// valid and disable the corresponding signal.
type RecommendConfig struct {
	DefaultLimit      int `koanf:"default_limit"`
	MaxLimit          int `koanf:"max_limit"`
	TrendingSinceYear int `koanf:"trending_since_year"`

	Weights RecommendWeights `koanf:"weights"`
}

// RecommendWeights holds the scoring multipliers.
type RecommendWeights struct {
	Genre               float64 `koanf:"genre"`
	Director            float64 `koanf:"director"`
	Actor               float64 `koanf:"actor"`
	Tag                 float64 `koanf:"tag"`
	RatingBoost         float64 `koanf:"rating_boost"`
	HybridContent       float64 `koanf:"hybrid_content"`
	HybridCollaborative float64 `koanf:"hybrid_collaborative"`
	CandidateMultiplier int     `koanf:"candidate_multiplier"`
}

// EngineConfig converts to the recommend package configuration.
func (r RecommendConfig) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Content: recommend.ContentWeights{
			Genre:       r.Weights.Genre,
			Director:    r.Weights.Director,
			Actor:       r.Weights.Actor,
			Tag:         r.Weights.Tag,
			RatingBoost: r.Weights.RatingBoost,
		},
		Hybrid: recommend.HybridWeights{
			Content:             r.Weights.HybridContent,
			Collaborative:       r.Weights.HybridCollaborative,
			CandidateMultiplier: r.Weights.CandidateMultiplier,
		},
		Fallback: recommend.FallbackConfig{
			TrendingSinceYear: r.TrendingSinceYear,
		},
		Limits: recommend.LimitsConfig{
			DefaultLimit: r.DefaultLimit,
			MaxLimit:     r.MaxLimit,
		},
	}
}
