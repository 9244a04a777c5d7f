// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory containing a single file and reports changes to that
// file only, debouncing rapid events (editors often trigger several writes per save).
package fsnotify

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/corey/recall/internal/ports"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before onChange fires.
const DefaultDebounce = 100 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
	stopped  bool
	mu       sync.Mutex
	errFn    func(error)

	// cbMu is held for reading while onChange runs; Stop takes it for
	// writing so it returns only after in-flight callbacks finish.
	cbMu sync.RWMutex
}

// NewWatcher creates a new file watcher with DefaultDebounce.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:       fw,
		debounce: DefaultDebounce,
		done:     make(chan struct{}),
	}, nil
}

// SetDebounce changes the quiet period. Call before WatchFile.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// OnError registers a callback for watcher errors. Without one, errors are
// dropped; fsnotify recovers on its own.
func (w *Watcher) OnError(fn func(error)) {
	w.errFn = fn
}

// WatchFile starts monitoring path. onChange receives the absolute path once
// per burst of events, after the file has been quiet for the debounce period.
func (w *Watcher) WatchFile(path string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		return err
	}
	if err := w.fw.Add(dir); err != nil {
		return err
	}

	var (
		tmu   sync.Mutex
		timer *time.Timer
	)
	fire := func() {
		w.cbMu.RLock()
		defer w.cbMu.RUnlock()
		select {
		case <-w.done:
			return
		default:
		}
		onChange(absPath)
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				// Chmod alone (touch, some backup tools) is not a content change
				if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)) {
					continue
				}

				tmu.Lock()
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(w.debounce, fire)
				tmu.Unlock()

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				if w.errFn != nil {
					w.errFn(err)
				}

			case <-w.done:
				tmu.Lock()
				if timer != nil {
					timer.Stop()
				}
				tmu.Unlock()
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources. It waits for a running
// onChange to return, so it must not be called from inside one.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.done)
	err := w.fw.Close()
	w.mu.Unlock()

	w.cbMu.Lock()
	w.cbMu.Unlock()
	return err
}

var _ ports.Watcher = (*Watcher)(nil)
