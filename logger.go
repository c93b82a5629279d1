package aabbkit

import (
	"context"
	"log/slog"
	"os"

	"github.com/aabbkit/aabbkit/box"
)

// Logger wraps slog.Logger with aabbkit-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTestcase adds a testcase name field to the logger.
func (l *Logger) WithTestcase(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("testcase", name),
	}
}

// LogGenerate logs a dataset generation.
func (l *Logger) LogGenerate(ctx context.Context, d *box.Dataset, seed int64) {
	l.InfoContext(ctx, "dataset generated",
		"count", d.Len(),
		"world_w", d.World.Width,
		"world_h", d.World.Height,
		"occupancy", d.Occupancy(),
		"seed", seed,
	)
}

// LogOracle logs a ground-truth run.
func (l *Logger) LogOracle(ctx context.Context, boxes, pairs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ground truth failed",
			"boxes", boxes,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "ground truth computed",
			"boxes", boxes,
			"pairs", pairs,
		)
	}
}

// LogPublish logs an artifact upload.
func (l *Logger) LogPublish(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "publish failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "artifact published",
			"name", name,
			"bytes", size,
		)
	}
}
