package unitgo

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with unitgo-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithKind adds a kind field to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// WithUnit adds a unit field to the logger.
func (l *Logger) WithUnit(unit string) *Logger {
	return &Logger{
		Logger: l.Logger.With("unit", unit),
	}
}

// LogParse logs a parse operation.
func (l *Logger) LogParse(ctx context.Context, input string, m Measurement, err error) {
	if err != nil {
		l.WarnContext(ctx, "parse failed",
			"input", input,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "parse completed",
		"input", input,
		"kind", m.Kind().Name(),
		"unit", m.Unit.ID(),
		"si", m.SI(),
	)
}

// LogConvert logs a conversion between two units.
func (l *Logger) LogConvert(ctx context.Context, from, to string, err error) {
	if err != nil {
		l.WarnContext(ctx, "conversion failed",
			"from", from,
			"to", to,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "conversion completed",
		"from", from,
		"to", to,
	)
}
