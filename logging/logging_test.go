package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/fishgrid/config"
)

func TestOpen_DisabledWithoutFile(t *testing.T) {
	logger, f, err := Open(config.Log{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f != nil {
		t.Error("Expected nil log file when no file is configured")
		f.Close()
	}
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("Expected discard logger to be disabled")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected standard log output to be io.Discard, got %v", log.Writer())
	}
}

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fishgrid.log")

	logger, f, err := Open(config.Log{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	defer log.SetOutput(os.Stderr)

	logger.Debug("fish found", "color", "green")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "fish found") {
		t.Errorf("Expected log line in file, got %q", data)
	}
	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("Standard log output must not reach the terminal")
	}
}

func TestOpen_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fishgrid.log")

	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, f, err := Open(config.Log{File: path})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	defer log.SetOutput(os.Stderr)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}
	rotated := false
	for _, entry := range entries {
		if entry.Name() != "fishgrid.log" && filepath.Ext(entry.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxLogSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}

func TestNew_Format(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, config.Log{Format: "json"}).Info("tick", "score", 25)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "tick" || record["score"] != float64(25) {
		t.Errorf("Unexpected record %v", record)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
