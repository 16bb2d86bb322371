package annostore

import (
	"log/slog"
	"os"

	"github.com/hupe1980/annostore/core"
)

// Logger wraps slog.Logger with annostore-specific context.
// This provides structured logging with consistent field names.
//
// The store only emits debug-level traces of completed or rejected
// operations. It never logs in place of returning an error.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStore tags every record with the store instance id.
func (l *Logger) WithStore(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("store", id),
	}
}

// WithType adds a type field to the logger.
func (l *Logger) WithType(t core.TypeID) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", t),
	}
}

// LogAdd logs the creation of an entry.
func (l *Logger) LogAdd(kind core.Kind, t core.TypeID, tid core.TID, err error) {
	if err != nil {
		l.Debug("add rejected",
			"kind", kind.String(),
			"type", t,
			"error", err,
		)
		return
	}
	l.Debug("add completed",
		"kind", kind.String(),
		"type", t,
		"tid", tid,
	)
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(tid core.TID, err error) {
	if err != nil {
		l.Debug("delete rejected",
			"tid", tid,
			"error", err,
		)
		return
	}
	l.Debug("delete completed",
		"tid", tid,
	)
}

// LogIndexBuild logs a relation index build.
func (l *Logger) LogIndexBuild(index string, count int, err error) {
	if err != nil {
		l.Debug("index build rejected",
			"index", index,
			"error", err,
		)
		return
	}
	l.Debug("index built",
		"index", index,
		"count", count,
	)
}

// LogSubtypeInvalidation logs a discarded subtype cache.
func (l *Logger) LogSubtypeInvalidation(t core.TypeID) {
	l.Debug("subtype cache discarded",
		"new_type", t,
	)
}
