// CineMatch - Movie Catalog and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newBufferedSlog(t *testing.T, level zerolog.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(level)
	return slog.New(NewSlogHandler(logger)), &buf
}

func TestSlogHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*slog.Logger)
		level string
	}{
		{"debug", func(l *slog.Logger) { l.Debug("m") }, "debug"},
		{"info", func(l *slog.Logger) { l.Info("m") }, "info"},
		{"warn", func(l *slog.Logger) { l.Warn("m") }, "warn"},
		{"error", func(l *slog.Logger) { l.Error("m") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedSlog(t, zerolog.TraceLevel)
			tt.log(logger)
			if want := `"level":"` + tt.level + `"`; !strings.Contains(buf.String(), want) {
				t.Errorf("output %s missing %s", buf.String(), want)
			}
		})
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	ctx := context.Background()

	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("Enabled(info) = true for warn logger")
	}
	if !h.Enabled(ctx, slog.LevelError) {
		t.Error("Enabled(error) = false for warn logger")
	}
}

func TestSlogHandler_Attributes(t *testing.T) {
	logger, buf := newBufferedSlog(t, zerolog.DebugLevel)

	logger.With("service", "http").
		WithGroup("restart").
		Info("service restarted",
			"count", 3,
			"backoff", time.Second,
			"ok", true,
			"err", errors.New("boom"),
			slog.Group("event", "kind", "terminate"),
		)

	output := buf.String()
	for _, want := range []string{
		`"service":"http"`,
		`"restart.count":3`,
		`"restart.ok":true`,
		`"restart.err":"boom"`,
		`"restart.event.kind":"terminate"`,
		`"message":"service restarted"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output %s missing %s", output, want)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelInfo + 2, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
