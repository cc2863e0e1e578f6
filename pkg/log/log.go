package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// BuildLogger returns a JSON logger writing to stderr at the given level.
func BuildLogger(level string) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger returns a JSON logger writing to w. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	ops := &slog.HandlerOptions{
		AddSource: true,
		Level:     ParseLevel(level),
	}
	return slog.New(slog.NewJSONHandler(w, ops))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ErrAttr returns an "error" attribute for err.
func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}

// IntAttr returns an int attribute.
func IntAttr(key string, value int) slog.Attr {
	return slog.Int(key, value)
}

// StringAttr returns a string attribute.
func StringAttr(key, value string) slog.Attr {
	return slog.String(key, value)
}
