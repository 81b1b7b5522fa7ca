// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for CineMatch.

# Configuration Sources

Configuration is layered with Koanf v2, later sources overriding earlier ones:

 1. Built-in defaults (structs provider)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, ./config.yml,
    /etc/cinematch/config.yaml, /etc/cinematch/config.yml
 3. Environment variables (explicit mapping, unknown variables are ignored)

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 15s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 10s)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Storage:
  - STORAGE_PATH: Badger directory for ratings (default: /data/ratings)
  - STORAGE_IN_MEMORY: Keep ratings in memory only (default: false)
  - STORAGE_SYNC_WRITES: fsync every write (default: false)
  - STORAGE_GC_INTERVAL: Value log GC interval (default: 10m)

Catalog:
  - CATALOG_PATH: JSON movie catalog; empty uses the embedded catalog

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Recommendations:
  - RECOMMEND_DEFAULT_LIMIT: Limit when none is given (default: 12)
  - RECOMMEND_MAX_LIMIT: Upper bound for caller limits (default: 100)
  - RECOMMEND_TRENDING_SINCE_YEAR: Cold-start trending cutoff (default: 2010)
  - RECOMMEND_HYBRID_CONTENT_WEIGHT, RECOMMEND_HYBRID_COLLABORATIVE_WEIGHT
  - RECOMMEND_GENRE_WEIGHT, RECOMMEND_DIRECTOR_WEIGHT, RECOMMEND_ACTOR_WEIGHT,
    RECOMMEND_TAG_WEIGHT, RECOMMEND_RATING_BOOST

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logger)
*/
package config
