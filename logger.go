package vectors

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with helpers for the parse and emit steps.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at warn level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// ParseLevel maps a level name such as "debug" or "WARN" to a slog.Level.
// Empty or unknown names map to warn.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// WithSource adds the input name to the logger.
func (l *Logger) WithSource(source string) *Logger {
	return &Logger{
		Logger: l.Logger.With("source", source),
	}
}

// LogRecord logs a parsed record.
func (l *Logger) LogRecord(r *Record, line int) {
	l.Debug("record parsed",
		"set", r.Set,
		"vector", r.Vector,
		"fields", r.Len(),
		"line", line,
	)
}

// LogSkipped logs a line ignored while looking for a header.
func (l *Logger) LogSkipped(line int) {
	l.Debug("line skipped", "line", line)
}

// LogPassThrough logs a field that is kept in the record but never emitted.
func (l *Logger) LogPassThrough(r *Record, key string, line int) {
	l.Info("unrecognised field not emitted",
		"set", r.Set,
		"vector", r.Vector,
		"field", key,
		"line", line,
	)
}

// LogUnterminated logs a record cut short by the end of input.
func (l *Logger) LogUnterminated(r *Record, dropped bool) {
	l.Warn("input ended inside a record",
		"set", r.Set,
		"vector", r.Vector,
		"dropped", dropped,
	)
}

// LogSummary logs the outcome of a Transpile run.
func (l *Logger) LogSummary(s Stats, err error) {
	if err != nil {
		l.Error("transpile failed",
			"records", s.Records,
			"arrays", s.Arrays,
			"error", err,
		)
		return
	}
	l.Info("transpile completed",
		"records", s.Records,
		"arrays", s.Arrays,
		"skipped", s.Skipped,
	)
}
