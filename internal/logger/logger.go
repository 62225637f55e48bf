// Package logger builds the zerolog loggers used by budgie. The interactive
// session owns the terminal, so logs go to a file rather than stdout.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// ContextKey is the type for context keys used by the logger
type ContextKey string

// LoggerKey is the context key for the logger instance
const LoggerKey ContextKey = "logger"

// New creates a structured logger writing to w at the given level.
// Unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// NewConsole creates a human readable logger on w.
func NewConsole(w io.Writer, level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}, level)
}

// Stderr is the log path that selects a console logger on standard error.
const Stderr = "-"

// Open creates a logger appending JSON lines to the file at path, or a
// console logger on stderr when path is Stderr. The returned closer must be
// called when done. If the file cannot be opened a disabled logger is
// returned along with the error.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == Stderr {
		return NewConsole(os.Stderr, level), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600) //nolint:gosec // path comes from config
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("opening log file: %w", err)
	}
	return New(f, level), f, nil
}

// WithContext adds the logger to the context
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from the context, or a disabled logger
// when none was attached.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}
