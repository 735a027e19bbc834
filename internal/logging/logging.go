// Package logging sets up the diagnostic logger. The launcher UI owns the
// terminal, so diagnostics go to ~/.launchkit/logs/launchkit.log instead of
// stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps a config/flag value to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New returns a text logger writing to w at level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1)
}

// Open creates appDir/logs/launchkit.log (append mode) and returns a logger on
// it together with a close func.
func Open(appDir string, level slog.Level) (*slog.Logger, func() error, error) {
	logDir := filepath.Join(appDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, "launchkit.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level).With("pid", os.Getpid()), f.Close, nil
}

// OpenOrDiscard is Open with a discard fallback: logging is never a reason to
// refuse to launch something.
func OpenOrDiscard(appDir string, level slog.Level) (*slog.Logger, func() error) {
	if appDir == "" {
		return Discard(), func() error { return nil }
	}
	l, closeFn, err := Open(appDir, level)
	if err != nil {
		return Discard(), func() error { return nil }
	}
	return l, closeFn
}
