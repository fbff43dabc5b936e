package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/simwire/simwire/internal/simtime"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModelPath string // .hcl model files (a file or a directory)
	StartTime string // optional simulation start, dispatched to Initialise

	LogFormat string
	LogLevel  string
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewConfig validates a Config and normalises its logging fields. Empty
// logging fields take the defaults; unknown values are rejected rather than
// silently downgraded.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	if cfg.StartTime != "" {
		if _, err := simtime.Parse(cfg.StartTime); err != nil {
			return nil, fmt.Errorf("invalid start time: %w", err)
		}
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return &cfg, nil
}

// slogLevel maps the validated LogLevel field to its slog value.
func (c *Config) slogLevel() slog.Level {
	return logLevels[c.LogLevel]
}
