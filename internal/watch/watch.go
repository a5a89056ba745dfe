// Package watch reruns a callback when files in a set of directories change.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Run watches dirs and calls fn after changes have settled for debounce.
//
// fn runs on the calling goroutine, never concurrently with itself. Its errors
// are logged and watching continues. Run returns when ctx is done or the
// watcher fails.
func Run(ctx context.Context, dirs []string, debounce time.Duration, fn func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	slog.Info("watching asset directories", "count", len(dirs), "debounce", debounce)

	// Since Go 1.23 Stop and Reset discard any pending tick, so the timer
	// needs no draining.
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			slog.Debug("asset change", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			if err := fn(); err != nil {
				slog.Error("regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)

		case <-ctx.Done():
			return nil
		}
	}
}

// relevant drops permission-only changes and hidden files, which the
// scan never packages.
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return !strings.HasPrefix(filepath.Base(event.Name), ".")
}
