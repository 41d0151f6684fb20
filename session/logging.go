package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/airbornedetergent/frametimer/unit"
)

// NewLogger returns a text logger on w. Debug lowers the level and routes
// negative-duration warnings from the unit package to the same logger.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if debug {
		unit.SetDiagnostics(logger)
	}
	return logger
}

// OpenDebugLog opens dir/name for appending when debug is set. Without debug,
// or if the file cannot be opened, it returns nil and the caller logs nowhere.
func OpenDebugLog(dir, name string, debug bool) *os.File {
	if !debug {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil
	}
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	return f
}
