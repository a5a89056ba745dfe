// Package log configures the process-wide slog logger.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init initializes the global logger.
// It configures the default slog logger to write to the specified path (or
// stderr) at the specified level. Stderr keeps stdout free for generated
// source.
//
// path: Log file path. If empty, logs to stderr.
// level: Log level ("debug", "info", "warn", "error"). Defaults to "info".
func Init(path string, level string) error {
	var w io.Writer = os.Stderr
	var f *os.File
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		var err error
		f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		w = f
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	SetOutput(w, level)
	return nil
}

// SetOutput points the default logger at w with a text handler.
func SetOutput(w io.Writer, level string) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

// Close releases the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
