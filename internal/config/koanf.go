// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	engine := recommend.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Storage: StorageConfig{
			Path:       "/data/ratings",
			InMemory:   false,
			SyncWrites: false,
			GCInterval: 10 * time.Minute,
		},
		Catalog: CatalogConfig{
			Path: "", // embedded catalog
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Recommend: RecommendConfig{
			DefaultLimit:      engine.Limits.DefaultLimit,
			MaxLimit:          engine.Limits.MaxLimit,
			TrendingSinceYear: engine.Fallback.TrendingSinceYear,
			Weights: RecommendWeights{
				Genre:               engine.Content.Genre,
				Director:            engine.Content.Director,
				Actor:               engine.Content.Actor,
				Tag:                 engine.Content.Tag,
				RatingBoost:         engine.Content.RatingBoost,
				HybridContent:       engine.Hybrid.Content,
				HybridCollaborative: engine.Hybrid.Collaborative,
				CandidateMultiplier: engine.Hybrid.CandidateMultiplier,
			},
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional config file
// and environment variables, then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are keys that accept comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields splits comma-separated string values into slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf keys.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"storage_path":        "storage.path",
	"storage_in_memory":   "storage.in_memory",
	"storage_sync_writes": "storage.sync_writes",
	"storage_gc_interval": "storage.gc_interval",

	"catalog_path": "catalog.path",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"recommend_default_limit":               "recommend.default_limit",
	"recommend_max_limit":                   "recommend.max_limit",
	"recommend_trending_since_year":         "recommend.trending_since_year",
	"recommend_genre_weight":                "recommend.weights.genre",
	"recommend_director_weight":             "recommend.weights.director",
	"recommend_actor_weight":                "recommend.weights.actor",
	"recommend_tag_weight":                  "recommend.weights.tag",
	"recommend_rating_boost":                "recommend.weights.rating_boost",
	"recommend_hybrid_content_weight":       "recommend.weights.hybrid_content",
	"recommend_hybrid_collaborative_weight": "recommend.weights.hybrid_collaborative",
	"recommend_candidate_multiplier":        "recommend.weights.candidate_multiplier",
}

// envTransformFunc maps environment variable names to koanf keys.
// Unmapped variables return "" and are skipped by the env provider.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
