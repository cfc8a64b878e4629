package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLogger_WritesJSONToFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, LevelInfo)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	logger.Info("bridge attached", "owner_id", "braindrive")
	logger.Debug("suppressed at info level")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "plugin.log"))
	if err != nil {
		t.Fatalf("open log file: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		lines = append(lines, entry)
	}

	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1", len(lines))
	}
	if lines[0]["msg"] != "bridge attached" {
		t.Errorf("msg = %v, want %q", lines[0]["msg"], "bridge attached")
	}
	if lines[0]["owner_id"] != "braindrive" {
		t.Errorf("owner_id = %v, want %q", lines[0]["owner_id"], "braindrive")
	}
}

func TestLogger_WithClientPropagatesAttrs(t *testing.T) {
	logger, capture := NewCapture(LevelDebug)

	child := logger.WithClient("braindrive", "inst-1").WithPage("page-1")
	child.Warn("discarding malformed payload", "field", "pageId")

	entries := capture.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	for key, want := range map[string]any{
		"owner_id":    "braindrive",
		"instance_id": "inst-1",
		"page_id":     "page-1",
		"field":       "pageId",
	} {
		if e.Attrs[key] != want {
			t.Errorf("Attrs[%q] = %v, want %v", key, e.Attrs[key], want)
		}
	}

	// The parent logger must not pick up the child's attributes.
	logger.Info("plain")
	last := capture.Entries()[1]
	if _, ok := last.Attrs["owner_id"]; ok {
		t.Error("parent logger inherited child attributes")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NopLogger()

	// Must not panic and Close must be a no-op.
	logger.Info("discarded")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
