package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLog(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true, Version: "test"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".catcount", "logs", "catcount.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}

	L().Debug("count.start", "run_id", "abc")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Path() != "" {
		t.Fatalf("expected logger reset after cleanup, path=%q", Path())
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log records, got %d: %s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["msg"] != "count.start" || rec["run_id"] != "abc" || rec["version"] != "test" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNew_InfoLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)

	l.Debug("hidden")
	l.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug record to be dropped: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("expected info record: %s", out)
	}
	if strings.Contains(out, `"source"`) {
		t.Fatalf("expected no source attr outside debug: %s", out)
	}
}

func TestSetup_UnwritableRootKeepsDiscarding(t *testing.T) {
	root := t.TempDir()
	// A plain file where the log directory should go makes MkdirAll fail.
	if err := os.WriteFile(filepath.Join(root, ".catcount"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cleanup, err := Setup(Config{Root: root})
	if err == nil {
		t.Fatalf("expected error")
	}
	if cleanup != nil {
		t.Fatalf("expected no cleanup on failure")
	}
	if Path() != "" {
		t.Fatalf("expected empty path, got %q", Path())
	}
	L().Info("dropped") // must not panic
}
