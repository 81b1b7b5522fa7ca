// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/ratings"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/supervisor"
	"github.com/tomtom215/cinematch/internal/supervisor/services"
)

const idleTimeout = 60 * time.Second

// app holds the wired components of a running server.
type app struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	store   *ratings.Store
	engine  *recommend.Engine
	server  *http.Server
	tree    *supervisor.SupervisorTree

	closeOnce sync.Once
}

func newApp(cfg *config.Config) (*app, error) {
	cat, err := catalog.Load(cfg.Catalog.LoaderConfig())
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	metrics.SetCatalogSize(cat.Len())
	logging.Info().
		Int("movies", cat.Len()).
		Str("path", catalogSource(cfg.Catalog.Path)).
		Msg("Catalog loaded")

	store, err := ratings.Open(cfg.Storage.StoreConfig(), logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("open rating store: %w", err)
	}

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logging.Logger())
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	router := api.NewRouter(api.NewHandler(cat, store, engine), middlewareConfig(cfg.Security))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create supervisor tree: %w", err)
	}

	if !cfg.Storage.InMemory && cfg.Storage.GCInterval > 0 {
		tree.AddStorageService(services.NewStoreGCService(store, cfg.Storage.GCInterval))
		logging.Info().Dur("interval", cfg.Storage.GCInterval).Msg("Rating store GC service added")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	return &app{
		cfg:     cfg,
		catalog: cat,
		store:   store,
		engine:  engine,
		server:  server,
		tree:    tree,
	}, nil
}

// Run serves until ctx is canceled and reports services that outlived the
// shutdown timeout.
func (a *app) Run(ctx context.Context) error {
	err := a.tree.Serve(ctx)

	unstopped, _ := a.tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return err
}

// Close releases the rating store. It is safe to call more than once.
func (a *app) Close() {
	a.closeOnce.Do(func() {
		if err := a.store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing rating store")
		}
	})
}

func middlewareConfig(sec config.SecurityConfig) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = sec.CORSOrigins
	mw.RateLimitRequests = sec.RateLimitReqs
	mw.RateLimitWindow = sec.RateLimitWindow
	mw.RateLimitDisabled = sec.RateLimitDisabled
	return mw
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
