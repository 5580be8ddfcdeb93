// Package logger provides structured logging functionality
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/cesargomez89/saavnsource/internal/constants"
)

// Logger wraps slog.Logger for application-wide logging
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // text, json
	Output io.Writer // defaults to stdout
}

// New creates a new structured logger
func New(cfg Config) *Logger {
	// Parse log level
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithComponent returns a logger with a component attribute
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With("component", component),
	}
}

// WithSource tags events with the catalog source they concern.
func (l *Logger) WithSource() *Logger {
	return &Logger{
		Logger: l.With("source", constants.SourceName),
	}
}

// WithOperation returns a logger tagged with the plugin operation name
// (loadtracks, search, retrieveStream, recommendations).
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.With("op", op),
	}
}

// WithQuery returns a logger with the identifier, URL or search text being resolved
func (l *Logger) WithQuery(query string) *Logger {
	return &Logger{
		Logger: l.With("query", query),
	}
}

// WithRequest returns a logger with the inbound request id
func (l *Logger) WithRequest(requestID string) *Logger {
	return &Logger{
		Logger: l.With("request_id", requestID),
	}
}

// Default returns a default logger for quick usage
func Default() *Logger {
	return New(Config{
		Level:  "info",
		Format: "text",
	})
}

// Discard returns a logger that drops everything, for tests and tools.
func Discard() *Logger {
	return New(Config{
		Level:  "error",
		Format: "text",
		Output: io.Discard,
	})
}
