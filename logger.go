package featmat

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with featmat-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMode adds a selection mode field to the logger.
func (l *Logger) WithMode(mode Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithPatternCount adds a pattern count field to the logger.
func (l *Logger) WithPatternCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("patterns", count),
	}
}

// LogSelect logs a selection operation with its report figures.
func (l *Logger) LogSelect(mode Mode, matchedPatterns, before, after int, err error) {
	if err != nil {
		l.Error("selection failed",
			"mode", mode.String(),
			"error", err,
		)
		return
	}
	l.Info("selection completed",
		"mode", mode.String(),
		"matched_patterns", matchedPatterns,
		"features_before", before,
		"features_after", after,
		"net_change", after-before,
	)
}

// LogProjection logs a feature-set alignment against a reference vocabulary.
func (l *Logger) LogProjection(refFeatures, padded, dropped int, err error) {
	if err != nil {
		l.Error("projection failed",
			"ref_features", refFeatures,
			"error", err,
		)
		return
	}
	l.Info("projection completed",
		"ref_features", refFeatures,
		"padded", padded,
		"dropped", dropped,
	)
}
