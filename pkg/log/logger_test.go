package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetOutput_FiltersByLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	SetOutput(&buf, "warn")
	slog.Info("hidden")
	slog.Warn("shown", "name", "textures/logo.png")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "name=textures/logo.png") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestInit_File(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "logs", "assetpack.log")
	if err := Init(path, "debug"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	slog.Debug("scanning", "root", "assets")
	if err := Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "root=assets") {
		t.Errorf("log file = %q", data)
	}
}
