// Package index owns the background rescan pipeline that keeps the snippet
// catalog synchronized with the directory on disk. Rescans run on a single
// worker goroutine; completed results are published as immutable snapshots
// through an atomic pointer swap.
package index

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/snipstash/snip/internal/snippet"
)

// ErrClosed signals that the coordinator has been shut down.
var ErrClosed = errors.New("index: coordinator closed")

// Stats captures lightweight instrumentation about the rescan pipeline.
type Stats struct {
	Generation     uint64
	Scanning       bool
	PendingRestart bool
}

// Coordinator schedules directory rescans. At most one scan runs at a time;
// a request issued while a scan is running cancels it and marks a restart,
// so rapid-fire requests collapse to a single pending restart. Callers of
// RequestRescan never block.
type Coordinator struct {
	dir  string
	ext  string
	logf func(string, ...any)
	load func(string) (snippet.Entry, error)

	mu       sync.Mutex
	scanning bool
	restart  bool
	job      *job
	idle     chan struct{}
	closed   bool
	gen      uint64

	snapshot atomic.Pointer[Snapshot]
	wg       sync.WaitGroup
}

// job is one in-flight scan. Its cancellation flag is the only state shared
// between the coordinator and the running scan besides the snapshot pointer.
type job struct {
	cancel atomic.Bool
}

// NewCoordinator constructs a coordinator for the given snippet directory
// and file extension. The initial snapshot is empty at generation zero.
func NewCoordinator(dir, ext string) *Coordinator {
	idle := make(chan struct{})
	close(idle)

	c := &Coordinator{
		dir:  filepath.Clean(dir),
		ext:  ext,
		logf: log.Printf,
		load: snippet.Load,
		idle: idle,
	}
	c.snapshot.Store(newSnapshot(0, map[string]snippet.Entry{}))
	return c
}

// Snapshot returns the currently published snapshot. Never nil.
func (c *Coordinator) Snapshot() *Snapshot {
	return c.snapshot.Load()
}

// RequestRescan triggers a background rescan and returns immediately. When a
// scan is already running it is cancelled and a fresh one starts as soon as
// the worker observes the flag or finishes its file in progress.
func (c *Coordinator) RequestRescan() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.scanning {
		c.restart = true
		c.job.cancel.Store(true)
		return
	}

	c.idle = make(chan struct{})
	c.spawnLocked()
}

// Stats returns instrumentation about the pipeline state.
func (c *Coordinator) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Generation:     c.gen,
		Scanning:       c.scanning,
		PendingRestart: c.restart,
	}
}

// WaitIdle blocks until no scan is running and no restart is pending, or
// until the context is done. It exists for synchronous callers that need
// the snapshot to reflect their own rescan request.
func (c *Coordinator) WaitIdle(ctx context.Context) error {
	for {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return ErrClosed
		}
		if !c.scanning {
			c.mu.Unlock()
			return nil
		}
		idle := c.idle
		c.mu.Unlock()

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancels any running scan and waits for the worker to exit. The
// coordinator accepts no further requests afterwards.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.restart = false
	if c.job != nil {
		c.job.cancel.Store(true)
	}
	c.mu.Unlock()

	c.wg.Wait()
	return nil
}

// spawnLocked starts the worker for a new job. Callers hold c.mu and have
// already ensured no scan is running or are the finishing worker itself.
func (c *Coordinator) spawnLocked() {
	j := &job{}
	c.job = j
	c.scanning = true
	c.restart = false
	c.wg.Add(1)
	go c.run(j)
}

func (c *Coordinator) run(j *job) {
	defer c.wg.Done()

	entries, aborted := c.scan(j)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed && c.restart {
		// Discard the cancelled partial result and go again. The idle
		// channel stays open across the restart.
		c.spawnLocked()
		return
	}

	c.scanning = false
	c.job = nil
	close(c.idle)

	if c.closed || aborted {
		return
	}

	c.gen++
	c.snapshot.Store(newSnapshot(c.gen, entries))
	c.logf("index: published generation %d with %d snippets", c.gen, len(entries))
}

// scan enumerates the directory and loads every matching file. It returns
// early with aborted=true once the job's cancellation flag is observed.
// Unreadable files are logged and skipped.
func (c *Coordinator) scan(j *job) (map[string]snippet.Entry, bool) {
	entries := make(map[string]snippet.Entry)

	dirents, err := os.ReadDir(c.dir)
	if err != nil {
		c.logf("index: enumerate %s: %v", c.dir, err)
		return entries, false
	}

	names := make([]string, 0, len(dirents))
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(de.Name()), c.ext) {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		if j.cancel.Load() {
			return entries, true
		}

		entry, err := c.load(filepath.Join(c.dir, name))
		if err != nil {
			c.logf("index: %v", err)
			continue
		}
		entries[entry.Identifier] = entry
	}

	return entries, false
}
