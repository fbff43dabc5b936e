package app

import (
	"io"
	"log/slog"
)

// newLogger builds the application's logger from a validated Config. The
// global slog default is left untouched so each App logs in isolation.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.slogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
