package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventStoreChanged indicates records under the named store (projects,
	// milestones, or flat) were added, edited, or removed.
	EventStoreChanged EventType = iota

	// EventInvalidated signals a change that could not be attributed to one
	// store; consumers should refresh their full view.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type  EventType
	Store string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel; events are dropped rather than blocking the watcher
// when the consumer is not ready.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
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

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer not ready; the next refresh picks the change up.
			}
		}

		// Coalesce bursts of file writes into a single notification per store.
		var mu sync.Mutex
		pending := make(map[Event]struct{})
		var timer *time.Timer
		enqueue := func(ev Event) {
			mu.Lock()
			pending[ev] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(100*time.Millisecond, func() {
					mu.Lock()
					batch := pending
					pending = make(map[Event]struct{})
					timer = nil
					mu.Unlock()
					for ev := range batch {
						send(ev)
					}
				})
			}
			mu.Unlock()
		}
		defer func() {
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				enqueue(Event{Type: EventInvalidated})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						enqueue(Event{Type: EventInvalidated})
						continue
					}
				}
				if name := p.storeForPath(evt.Name); name != "" {
					enqueue(Event{Type: EventStoreChanged, Store: name})
				} else {
					enqueue(Event{Type: EventInvalidated})
				}
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// storeForPath derives the record store name from a changed file path.
func (p *persistence) storeForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	switch parts[0] {
	case StoreProjects, StoreMilestones, flatDir:
		return parts[0]
	}
	return ""
}
