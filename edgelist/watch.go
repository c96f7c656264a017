// SPDX-License-Identifier: MIT

package edgelist

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before a change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports writes to one edge-list file. It watches the parent
// directory so editors that replace the file on save are still seen.
type Watcher struct {
	Path    string
	Changes <-chan string // cleaned Path, once per settled burst of writes

	changes  chan string
	done     chan struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
	started  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path. debounce ≤ 0 selects
// DefaultDebounce.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("edgelist: create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ch := make(chan string, 4)
	return &Watcher{
		Path:     filepath.Clean(path),
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("edgelist: watch %s: %w", w.Path, err)
	}

	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. It is safe to call after
// a failed Start, without Start, and more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.watcher.Close()
		if w.started {
			<-w.done
		}
		close(w.changes)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= w.debounce {
				pending = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

// emit drops the notification when the consumer is still behind; one queued
// change already triggers a reload of the latest contents.
func (w *Watcher) emit() {
	select {
	case w.changes <- w.Path:
	default:
	}
}
