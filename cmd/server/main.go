// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main is the entry point for the CineMatch server.
//
// CineMatch serves a movie catalog, stores per-user star ratings and
// produces personalized recommendations with content-based, collaborative
// and hybrid strategies.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: embedded movies.json or CATALOG_PATH
//  4. Rating store: BadgerDB at STORAGE_PATH, or in memory
//  5. Recommendation engine: weights and limits from RECOMMEND_*
//  6. HTTP server: Chi router under the suture supervisor tree
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
// in-flight requests for up to HTTP_SHUTDOWN_TIMEOUT, then the rating
// store is closed.
//
// # Example Usage
//
//	export STORAGE_IN_MEMORY=true
//	export LOG_FORMAT=console
//	./cinematch
//
// Docker with a persistent rating volume:
//
//	docker run -d -v cinematch-data:/data -p 8080:8080 ghcr.io/tomtom215/cinematch
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.LoggerConfig())
	logging.Info().Msg("Starting CineMatch with supervisor tree")

	app, err := newApp(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		app.Close()
		os.Exit(1)
	}

	logging.Info().Msg("Application stopped gracefully")
}
