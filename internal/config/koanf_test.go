// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate runs the test in an empty directory so no stray config.yaml is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Storage.Path != "/data/ratings" {
		t.Errorf("Storage.Path = %q, want /data/ratings", cfg.Storage.Path)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("Catalog.Path = %q, want empty", cfg.Catalog.Path)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Recommend.DefaultLimit != 12 || cfg.Recommend.MaxLimit != 100 {
		t.Errorf("Recommend limits = %d/%d, want 12/100", cfg.Recommend.DefaultLimit, cfg.Recommend.MaxLimit)
	}
	if cfg.Recommend.TrendingSinceYear != 2010 {
		t.Errorf("Recommend.TrendingSinceYear = %d, want 2010", cfg.Recommend.TrendingSinceYear)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEngineConfigMatchesDefaults(t *testing.T) {
	engine := defaultConfig().Recommend.EngineConfig()

	if engine.Content.Director != 2.0 || engine.Content.Actor != 1.5 || engine.Content.Tag != 0.5 {
		t.Errorf("content weights = %+v", engine.Content)
	}
	if engine.Hybrid.Content != 0.6 || engine.Hybrid.Collaborative != 0.4 {
		t.Errorf("hybrid weights = %+v", engine.Hybrid)
	}
	if engine.Hybrid.CandidateMultiplier != 2 {
		t.Errorf("CandidateMultiplier = %d, want 2", engine.Hybrid.CandidateMultiplier)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"http_port", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"STORAGE_IN_MEMORY", "storage.in_memory"},
		{"CATALOG_PATH", "catalog.path"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"RECOMMEND_MAX_LIMIT", "recommend.max_limit"},
		{"RECOMMEND_DIRECTOR_WEIGHT", "recommend.weights.director"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		isolate(t)
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("working directory", func(t *testing.T) {
		isolate(t)
		if err := os.WriteFile("config.yaml", []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("env override", func(t *testing.T) {
		isolate(t)
		customPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(customPath, []byte("{}\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)
		if got := findConfigFile(); got != customPath {
			t.Errorf("findConfigFile() = %q, want %q", got, customPath)
		}
	})

	t.Run("missing env path falls through", func(t *testing.T) {
		isolate(t)
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_IN_MEMORY", "true")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("RECOMMEND_DEFAULT_LIMIT", "6")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if !cfg.Storage.InMemory {
		t.Error("Storage.InMemory = false, want true")
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if got := strings.Join(cfg.Security.CORSOrigins, ","); got != "http://a.test,http://b.test" {
		t.Errorf("CORSOrigins = %q", got)
	}
	if cfg.Recommend.DefaultLimit != 6 {
		t.Errorf("Recommend.DefaultLimit = %d, want 6", cfg.Recommend.DefaultLimit)
	}
	// Untouched settings keep their defaults.
	if cfg.Recommend.Weights.Director != 2.0 {
		t.Errorf("Weights.Director = %v, want 2", cfg.Recommend.Weights.Director)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 7000
  host: 127.0.0.1
logging:
  level: warn
  format: console
storage:
  in_memory: true
recommend:
  max_limit: 50
  weights:
    director: 3.5
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7000 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %+v, want 127.0.0.1:7000", cfg.Server)
	}
	if cfg.Server.Addr() != "127.0.0.1:7000" {
		t.Errorf("Addr() = %q", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Recommend.MaxLimit != 50 {
		t.Errorf("Recommend.MaxLimit = %d, want 50", cfg.Recommend.MaxLimit)
	}
	if cfg.Recommend.Weights.Director != 3.5 {
		t.Errorf("Weights.Director = %v, want 3.5", cfg.Recommend.Weights.Director)
	}
	if cfg.Recommend.Weights.Actor != 1.5 {
		t.Errorf("Weights.Actor = %v, want default 1.5", cfg.Recommend.Weights.Actor)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"port out of range", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"no storage path", map[string]string{"STORAGE_PATH": " ", "STORAGE_IN_MEMORY": "false"}, "STORAGE_PATH"},
		{"zero rate limit", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS"},
		{"default above max", map[string]string{"RECOMMEND_DEFAULT_LIMIT": "200"}, "default_limit"},
		{"negative weight", map[string]string{"RECOMMEND_TAG_WEIGHT": "-1"}, "content.tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() error = nil, want validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestRateLimitDisabledSkipsLimits(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when rate limiting is disabled", err)
	}
}

func TestConversions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage.InMemory = true
	cfg.Catalog.Path = "/srv/movies.json"
	cfg.Logging.Caller = true

	if sc := cfg.Storage.StoreConfig(); !sc.InMemory || sc.Path != "/data/ratings" {
		t.Errorf("StoreConfig() = %+v", sc)
	}
	if cc := cfg.Catalog.LoaderConfig(); cc.Path != "/srv/movies.json" {
		t.Errorf("LoaderConfig() = %+v", cc)
	}
	if lc := cfg.Logging.LoggerConfig(); !lc.Caller || lc.Level != "info" || !lc.Timestamp {
		t.Errorf("LoggerConfig() = %+v", lc)
	}
}
