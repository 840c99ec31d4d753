package state

import (
	"errors"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// DirWatcher observes the snippet directory and notifies a callback whenever
// its contents change. Notifications carry no payload and are at-least-once;
// bursts may coalesce, so the consumer must tolerate redundant triggers.
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	ext      string
	done     chan struct{}
	once     sync.Once
	mu       sync.Mutex
	onChange func()
	onClose  func()
}

// NewDirWatcher constructs a watcher bound to the snippet directory. The
// directory is watched flat; subdirectories are not indexed.
func NewDirWatcher(dir, ext string) (*DirWatcher, error) {
	cleaned := filepath.Clean(dir)
	if cleaned == "" || cleaned == "." {
		return nil, errors.New("snippet directory cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(cleaned); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &DirWatcher{
		watcher: w,
		dir:     cleaned,
		ext:     ext,
		done:    make(chan struct{}),
	}, nil
}

// Start launches the event loop. It returns immediately.
func (w *DirWatcher) Start() {
	if w == nil {
		return
	}
	go w.loop()
}

func (w *DirWatcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isRelevant(event) {
				continue
			}
			if fn := w.changeFn(); fn != nil {
				fn()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				log.Printf("watcher: %v", err)
			}
		}
	}
}

// OnChange registers the callback fired when the directory's snippet entries
// change.
func (w *DirWatcher) OnChange(fn func()) {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// OnClose registers a callback invoked exactly once when the watcher shuts
// down.
func (w *DirWatcher) OnClose(fn func()) {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClose = fn
}

func (w *DirWatcher) changeFn() func() {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.onChange
}

// Close tears the watcher down. Safe to call more than once.
func (w *DirWatcher) Close() error {
	if w == nil {
		return nil
	}

	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()

		w.mu.Lock()
		fn := w.onClose
		w.mu.Unlock()
		if fn != nil {
			fn()
		}
	})

	return closeErr
}

func (w *DirWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	// Events on the watched directory itself (removal, rename) affect the
	// whole catalog, not a single snippet file.
	if filepath.Clean(event.Name) == w.dir {
		return true
	}

	return strings.EqualFold(filepath.Ext(event.Name), w.ext)
}
