package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes a config file change notification.
type EventType int

const (
	// EventConfigChanged indicates the file was written or replaced.
	EventConfigChanged EventType = iota

	// EventConfigRemoved indicates the file is gone; callers keep their
	// last good config.
	EventConfigRemoved
)

// Event is emitted by WatchConfig when the config file changes.
type Event struct {
	Type EventType
	Path string
}

// WatchConfig streams change events for the file at path until ctx is
// cancelled. The parent directory is watched so editors that save by
// renaming a temporary file are seen too. The channel is closed once ctx is
// done or the watcher fails.
func WatchConfig(ctx context.Context, path string) (<-chan Event, error) {
	if path == "" {
		return nil, errors.New("store: no config file to watch")
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("store: resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", filepath.Dir(path), err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer closeWatcher()

		// Bursts of writes are coalesced so one save triggers one reload.
		var (
			pending  = make(map[EventType]bool)
			debounce <-chan time.Time
		)
		enqueue := func(t EventType) {
			pending[t] = true
			if debounce == nil {
				debounce = time.After(100 * time.Millisecond)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-debounce:
				debounce = nil
				ev := Event{Type: EventConfigChanged, Path: path}
				// A removal followed by a rewrite in the same burst is a change.
				if pending[EventConfigRemoved] && !pending[EventConfigChanged] {
					ev.Type = EventConfigRemoved
				}
				pending = make(map[EventType]bool)
				select {
				case events <- ev:
				default:
					// The consumer reloads from disk, so a dropped event is
					// covered by the next one.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", path, err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != path {
					continue
				}
				if evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
					if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
						enqueue(EventConfigRemoved)
						continue
					}
				}
				enqueue(EventConfigChanged)
			}
		}
	}()

	return events, nil
}
