package ittybitty

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with ittybitty-specific context.
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
// This is the package default.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// LogSpill logs the transition of a set from inline to heap storage.
func (l *Logger) LogSpill(ctx context.Context, fromWords, toWords, requestedBits int) {
	l.DebugContext(ctx, "bitset spilled to heap",
		"from_words", fromWords,
		"to_words", toWords,
		"requested_bits", requestedBits,
	)
}

// LogGrow logs the reallocation of an already spilled set.
func (l *Logger) LogGrow(ctx context.Context, fromWords, toWords, requestedBits int) {
	l.DebugContext(ctx, "bitset heap grown",
		"from_words", fromWords,
		"to_words", toWords,
		"requested_bits", requestedBits,
	)
}
