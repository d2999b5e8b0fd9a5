// Package logger builds the slog.Logger used across dirsplit.
//
// Loggers are constructed explicitly and passed to the components that need
// them; there is no package-level logger and no global state. Text output goes
// through ColorTextHandler, JSON output through the stdlib JSON handler.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or file path
}

// New builds a logger from the given configuration. The returned io.Closer
// owns the output destination; callers should defer Close. For stdout and
// stderr the closer is a no-op.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	var (
		out      io.Writer
		closer   io.Closer = nopCloser{}
		useColor bool
	)

	switch strings.ToLower(cfg.Output) {
	case "stdout", "":
		out = os.Stdout
		useColor = isTerminal(os.Stdout.Fd())
	case "stderr":
		out = os.Stderr
		useColor = isTerminal(os.Stderr.Fd())
	default:
		// Assume it's a file path
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", cfg.Output, err)
		}
		out = f
		closer = f
		useColor = false // Files don't support color
	}

	return NewWithWriter(out, cfg.Level, cfg.Format, useColor), closer, nil
}

// NewWithWriter builds a logger that writes to w. This is the constructor the
// tests use; New delegates to it after resolving the output destination.
func NewWithWriter(w io.Writer, level, format string, enableColor bool) *slog.Logger {
	lvl := ParseLevel(level)

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = NewColorTextHandler(w, lvl, enableColor)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level. Matching is
// case-insensitive; unrecognized names fall back to info, the same default
// the config layer applies.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// nopCloser is returned for the std streams, which the logger does not own.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }
