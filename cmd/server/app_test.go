// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.ConfigPathEnvVar, "")
	t.Setenv("STORAGE_IN_MEMORY", "true")
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "1s")

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	return cfg
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestMiddlewareConfig(t *testing.T) {
	mw := middlewareConfig(config.SecurityConfig{
		CORSOrigins:       []string{"https://movies.test"},
		RateLimitReqs:     7,
		RateLimitWindow:   time.Second,
		RateLimitDisabled: true,
	})

	if len(mw.CORSAllowedOrigins) != 1 || mw.CORSAllowedOrigins[0] != "https://movies.test" {
		t.Errorf("CORSAllowedOrigins = %v", mw.CORSAllowedOrigins)
	}
	if mw.RateLimitRequests != 7 || mw.RateLimitWindow != time.Second || !mw.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", mw.RateLimitRequests, mw.RateLimitWindow, mw.RateLimitDisabled)
	}
	if len(mw.CORSAllowedMethods) == 0 {
		t.Error("default CORS methods were dropped")
	}
}

func TestNewApp(t *testing.T) {
	app, err := newApp(testConfig(t))
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	defer app.Close()

	if app.catalog.Len() != 12 {
		t.Errorf("catalog has %d movies, want 12", app.catalog.Len())
	}

	rec := httptest.NewRecorder()
	app.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("ready status = %d, body %s", rec.Code, rec.Body.String())
	}

	// Close is idempotent.
	app.Close()
	app.Close()
}

func TestNewApp_BadCatalog(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.Path = "/no/such/movies.json"

	if _, err := newApp(cfg); err == nil || !strings.Contains(err.Error(), "catalog") {
		t.Errorf("newApp() error = %v, want catalog error", err)
	}
}

func TestAppRun(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Port = freePort(t)

	app, err := newApp(cfg)
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(ctx) }()

	url := "http://127.0.0.1:" + strconv.Itoa(cfg.Server.Port) + "/api/v1/health/live"
	deadline := time.Now().Add(3 * time.Second)
	for {
		resp, err := http.Get(url) //nolint:noctx // test polling
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("live status = %d", resp.StatusCode)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
