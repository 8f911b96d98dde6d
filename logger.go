package densgo

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger wraps slog.Logger with densgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRunID tags the logger with a run identifier.
func (l *Logger) WithRunID(id uuid.UUID) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id.String()),
	}
}

// LogRun logs a completed (or failed) clustering run.
func (l *Logger) LogRun(ctx context.Context, points, clusters, noise int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering run failed",
			"points", points,
			"duration", duration,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "clustering run completed",
			"points", points,
			"clusters", clusters,
			"noise", noise,
			"duration", duration,
		)
	}
}

// LogLoad logs a dataset load.
func (l *Logger) LogLoad(ctx context.Context, name string, points int, fingerprint uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "dataset load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset loaded",
			"name", name,
			"points", points,
			"fingerprint", fingerprint,
		)
	}
}

// LogWrite logs a results write.
func (l *Logger) LogWrite(ctx context.Context, name string, points int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "results write failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "results written",
			"name", name,
			"points", points,
		)
	}
}

// LogSnapshot logs a summary snapshot save.
func (l *Logger) LogSnapshot(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
		)
	}
}
