package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "popup.log")

	logger, closer, err := Init(Config{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	logger.Debug("popup open", "kind", "alert")
	logger.Info("popup resolved", "confirmed", true)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"popup open", "kind=alert", "confirmed=true", "level=DEBUG"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestInitLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "popup.log")

	logger, closer, err := Init(Config{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info line written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn line missing")
	}
}

func TestInitWithoutFileDiscards(t *testing.T) {
	logger, closer, err := Init(Config{})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("discard logger reports enabled")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
