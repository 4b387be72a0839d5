// Package watcher monitors the memory store for external changes. It
// wraps fsnotify with recursive directory registration, per-path
// debouncing, and the shared internal-name filter.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"mnemo/internal/domain"
)

// DefaultDebounce suppresses duplicate events for the same path inside
// this window.
const DefaultDebounce = 200 * time.Millisecond

// Event is one observed change to a non-internal path under the root.
type Event struct {
	Path string
	Op   string
	Time time.Time
}

// Watcher emits change events for a store root until closed.
type Watcher struct {
	root     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	events   chan Event

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
}

// New starts watching root and all of its subdirectories.
func New(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     root,
		debounce: DefaultDebounce,
		fsw:      fsw,
		events:   make(chan Event, 64),
		pending:  make(map[string]*time.Timer),
	}

	err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if path != root && domain.IsInternal(path) {
				return filepath.SkipDir
			}
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Events returns the channel of debounced change events. It is closed
// when the watcher shuts down.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for _, timer := range w.pending {
		timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if domain.IsInternal(event.Name) {
		return
	}

	// New directories must be registered to keep the watch recursive.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.fsw.Add(event.Name)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if timer, ok := w.pending[event.Name]; ok {
		timer.Stop()
	}
	op := event.Op.String()
	w.pending[event.Name] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.pending, event.Name)
		if w.closed {
			return
		}
		// loop closes w.events only after Close sets closed under this
		// lock, so the send cannot race the close.
		select {
		case w.events <- Event{Path: event.Name, Op: op, Time: time.Now()}:
		default:
		}
	})
}
