package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/MikeSquared-Agency/Ranker/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
			ctx := context.Background()
			if !logger.Enabled(ctx, tt.want) {
				t.Errorf("expected %s enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(ctx, tt.want-4) {
				t.Errorf("expected level below %s disabled", tt.want)
			}
		})
	}
}

func TestNewLoggerFormat(t *testing.T) {
	if _, ok := newLogger(config.LoggingConfig{Format: "text"}).Handler().(*slog.TextHandler); !ok {
		t.Error("expected text handler")
	}
	if _, ok := newLogger(config.LoggingConfig{Format: "json"}).Handler().(*slog.JSONHandler); !ok {
		t.Error("expected json handler")
	}
}
