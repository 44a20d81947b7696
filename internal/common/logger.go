// Package common holds ambient helpers shared by the CLI and the opt-in dispatch
// decorators. The codec and mapper packages never log.
package common

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Loggable interface for types that support custom logging.
type Loggable interface {
	SetLogger(logger *slog.Logger)
	GetLogger() *slog.Logger
}

// LoggerMixin provides common logging functionality.
type LoggerMixin struct {
	Logger *slog.Logger
}

// NewLoggerMixin creates a new logger mixin with default logger.
func NewLoggerMixin() LoggerMixin {
	return LoggerMixin{
		Logger: slog.Default(),
	}
}

// SetLogger sets a custom logger.
func (l *LoggerMixin) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.Logger = logger
	}
}

// GetLogger returns the logger.
func (l *LoggerMixin) GetLogger() *slog.Logger {
	if l.Logger == nil {
		l.Logger = slog.Default()
	}
	return l.Logger
}

// ParseLevel maps a config level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// NewLogger builds a text or json slog logger writing to w.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
