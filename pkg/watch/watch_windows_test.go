//go:build windows

package watch

import (
	"os"
	"testing"
	"time"

	p "github.com/go-forge/gofs/pkg/path"
)

const maximumEventWaitTime = 5 * time.Second

func waitForEvent(t *testing.T, w *Watcher, received map[string]EventKind, path string, kind EventKind) {
	t.Helper()

	deadline := time.Now().Add(maximumEventWaitTime)
	for time.Now().Before(deadline) {
		if err := w.ProcessEvents(); err != nil {
			t.Fatal("ProcessEvents returned an error:", err)
		}
		if observed, ok := received[path]; ok && observed&kind == kind {
			delete(received, path)
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("event %v for %q not observed within deadline", kind, path)
}

func TestWatcherObservesModifyAndRemove(t *testing.T) {
	dir := t.TempDir()
	received := make(map[string]EventKind)

	w, err := New(func(path string, kind EventKind) {
		received[path] = received[path] | kind
	})
	if err != nil {
		t.Fatal("New returned an error:", err)
	}
	defer w.Close()

	file := string(p.Append(p.Path(dir), "watched.txt"))
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal("unable to create test file:", err)
	}
	if err := w.WatchFile(file); err != nil {
		t.Fatal("WatchFile returned an error:", err)
	}

	if err := os.WriteFile(file, []byte("data"), 0644); err != nil {
		t.Fatal("unable to modify test file:", err)
	}
	waitForEvent(t, w, received, file, Modified)

	if err := os.Remove(file); err != nil {
		t.Fatal("unable to remove test file:", err)
	}
	waitForEvent(t, w, received, file, Removed)
}

func TestWatcherUnwatchFileClosesDirectoryHandle(t *testing.T) {
	dir := t.TempDir()
	file := string(p.Append(p.Path(dir), "solo.txt"))
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal("unable to create test file:", err)
	}

	w, err := New(func(string, EventKind) {})
	if err != nil {
		t.Fatal("New returned an error:", err)
	}
	defer w.Close()

	if err := w.WatchFile(file); err != nil {
		t.Fatal("WatchFile returned an error:", err)
	}
	if len(w.dirs) != 1 {
		t.Fatalf("expected one directory watch, found %d", len(w.dirs))
	}

	if err := w.UnwatchFile(file); err != nil {
		t.Fatal("UnwatchFile returned an error:", err)
	}
	if len(w.dirs) != 0 {
		t.Errorf("expected the directory watch to be torn down, found %d remaining", len(w.dirs))
	}
}
