// Package cli implements the cabinetry command-line interface.
//
// Commands replay scenario scripts against an in-memory scene and render
// the resolved result as a terminal table and, optionally, as PDF, label,
// XLSX and DXF reports. All commands support --verbose (-v) for debug-level
// logging; the logger and the loaded configuration travel in the command
// context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/cabinetry/internal/model"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps that filters
// messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg model.AppConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the loaded config, or the defaults.
func configFromContext(ctx context.Context) model.AppConfig {
	if cfg, ok := ctx.Value(configKey).(model.AppConfig); ok {
		return cfg
	}
	return model.DefaultAppConfig()
}
