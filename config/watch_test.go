package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_ReportsTuningWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("player:\n  speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Clean(name) != filepath.Clean(path) {
			t.Fatalf("expected event for %s, got %s", path, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a change event")
	}
}

func TestWatcher_PollEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer w.Close()

	if name, ok := w.Poll(); ok {
		t.Fatalf("expected no pending change, got %s", name)
	}
}
