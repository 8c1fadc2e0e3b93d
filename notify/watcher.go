// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build !js

package notify

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last file event
// before reading the key.
const DefaultDebounce = 50 * time.Millisecond

// ItemReader is the read half of a storage area.
type ItemReader interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
}

// FileWatcher turns writes made to a storage file by other processes into
// broker events with ExternalOrigin. Values written from this process are
// learned from the broker and not reported again.
type FileWatcher struct {
	path     string
	key      string
	area     ItemReader
	broker   *Broker
	origin   string
	debounce time.Duration

	mu   sync.Mutex
	last string
}

func NewFileWatcher(path, key string, area ItemReader, broker *Broker, debounce time.Duration) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileWatcher{
		path:     path,
		key:      key,
		area:     area,
		broker:   broker,
		origin:   NewOrigin(),
		debounce: debounce,
	}
}

// Run watches until ctx is done.
func (w *FileWatcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	// watch the directory: SQLite journals and temp-then-rename writers
	// replace or touch sibling files
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	local := w.broker.Subscribe(w.key, w.origin)
	defer local.Close()

	if v, ok, err := w.area.GetItem(ctx, w.key); err == nil && ok {
		w.setLast(v)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	slog.Debug("watching storage file", "path", w.path, "key", w.key)

	for {
		select {
		case <-ctx.Done():
			return nil

		case e, ok := <-local.C():
			if !ok {
				return nil
			}
			if e.Origin != ExternalOrigin {
				w.setLast(e.NewValue)
			}

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher error", "path", w.path, "error", err)

		case <-timer.C:
			w.check(ctx)
		}
	}
}

func (w *FileWatcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasPrefix(filepath.Base(ev.Name), filepath.Base(w.path))
}

func (w *FileWatcher) setLast(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = v
}

func (w *FileWatcher) check(ctx context.Context) {
	value, ok, err := w.area.GetItem(ctx, w.key)
	if err != nil {
		slog.Warn("failed to read watched key", "key", w.key, "error", err)
		return
	}
	if !ok {
		return
	}

	w.mu.Lock()
	old := w.last
	changed := value != old
	w.last = value
	w.mu.Unlock()

	if !changed {
		return
	}
	slog.Debug("storage changed by another process", "key", w.key)
	w.broker.Publish(Event{Key: w.key, OldValue: old, NewValue: value, Origin: ExternalOrigin})
}
