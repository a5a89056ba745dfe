package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRun_CoalescesChanges(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []string{dir}, 100*time.Millisecond, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(200 * time.Millisecond)

	for _, name := range []string{"a.png", "b.png", "c.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not called after changes")
	}

	// The burst should have produced a single regeneration.
	select {
	case <-calls:
		t.Error("callback called more than once for one burst")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, time.Millisecond, func() error { return nil })
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "assets/textures/logo.png", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "assets/textures/logo.png", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "assets/textures/logo.png", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "assets/textures/logo.png", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "assets/textures/.logo.png.swp", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := relevant(tt.event); got != tt.want {
			t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}
