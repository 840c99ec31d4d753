package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/snipstash/snip/internal/index"
)

func TestDirWatcherNotifiesOnChange(t *testing.T) {
	dir := t.TempDir()

	w, err := NewDirWatcher(dir, ".txt")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	changes := make(chan struct{}, 16)
	w.OnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	w.Start()

	path := filepath.Join(dir, "todo.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatalf("write snippet: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatalf("no notification for file creation")
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove snippet: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatalf("no notification for file removal")
	}
}

func TestDirWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()

	w, err := NewDirWatcher(dir, ".txt")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	changes := make(chan struct{}, 16)
	w.OnChange(func() { changes <- struct{}{} })
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case <-changes:
		t.Fatalf("unexpected notification for non-snippet file")
	case <-time.After(250 * time.Millisecond):
	}
}

func TestDirWatcherCloseFiresOnCloseOnce(t *testing.T) {
	w, err := NewDirWatcher(t.TempDir(), ".txt")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}

	closed := 0
	w.OnClose(func() { closed++ })

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if closed != 1 {
		t.Fatalf("OnClose fired %d times, want 1", closed)
	}
}

func TestWatcherDrivesCoordinator(t *testing.T) {
	dir := t.TempDir()

	coordinator := index.NewCoordinator(dir, ".txt")
	defer coordinator.Close()

	w, err := NewDirWatcher(dir, ".txt")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()
	w.OnChange(coordinator.RequestRescan)
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("write snippet: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, ok := coordinator.Snapshot().Get("new"); ok {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("snapshot never picked up the new snippet")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDirWatcherTreatsDirectoryEventsAsRelevant(t *testing.T) {
	dir := t.TempDir()

	w, err := NewDirWatcher(dir, ".txt")
	if err != nil {
		t.Fatalf("NewDirWatcher: %v", err)
	}
	defer w.Close()

	// The watched directory itself disappearing or being renamed has no
	// snippet extension but still invalidates the catalog.
	for _, op := range []fsnotify.Op{fsnotify.Remove, fsnotify.Rename} {
		if !w.isRelevant(fsnotify.Event{Name: dir, Op: op}) {
			t.Fatalf("expected %v on the watched directory to be relevant", op)
		}
	}

	if w.isRelevant(fsnotify.Event{Name: filepath.Join(dir, "notes"), Op: fsnotify.Create}) {
		t.Fatalf("expected an extensionless entry inside the directory to be irrelevant")
	}
	if !w.isRelevant(fsnotify.Event{Name: filepath.Join(dir, "a.txt"), Op: fsnotify.Create}) {
		t.Fatalf("expected a snippet file event to be relevant")
	}
}
