package chunkedvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with chunkedvec-specific context.
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
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// defaultLogger is shared by every vector that is not given a logger.
var defaultLogger = NoopLogger()

// WithName adds a name field to the logger (useful for telling vectors apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vec", name),
	}
}

// WithChunkSize adds a chunk_size field to the logger.
func (l *Logger) WithChunkSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunk_size", size),
	}
}

// LogChunkAlloc logs the allocation of a new chunk.
func (l *Logger) LogChunkAlloc(ctx context.Context, chunkIdx, chunkSize int) {
	l.DebugContext(ctx, "chunk allocated",
		"chunk", chunkIdx,
		"chunk_size", chunkSize,
	)
}

// LogReserve logs a pre-sizing allocation of several chunks at once.
func (l *Logger) LogReserve(ctx context.Context, chunks, chunkSize int) {
	l.DebugContext(ctx, "chunks reserved",
		"chunks", chunks,
		"chunk_size", chunkSize,
		"allocated_capacity", chunks*chunkSize,
	)
}

// LogBoundsViolation logs a fatal out-of-range index access.
func (l *Logger) LogBoundsViolation(ctx context.Context, index, length int) {
	l.ErrorContext(ctx, "index out of range",
		"index", index,
		"len", length,
	)
}
