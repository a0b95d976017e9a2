package store

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes a change seen on disk.
type EventType int

const (
	// EventListChanged means items of List were written or deleted.
	EventListChanged EventType = iota
	// EventListsInvalidated means a list appeared or a change could not be
	// tied to one list. Rebuild everything.
	EventListsInvalidated
)

// Event is emitted by Persistence.Watch.
type Event struct {
	Type EventType
	List string
}

// settle is how long a burst of writes may run before it is reported.
const settle = 100 * time.Millisecond

// Watch reports changes below the base path until ctx is done, then closes
// the channel. The layout is one directory per list holding one file per
// item, so the base directory and each list directory are watched.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := p.watchLists(w); err != nil {
		_ = w.Close()
		return nil, err
	}

	events := make(chan Event, 64)
	go p.forward(ctx, w, events)
	return events, nil
}

func (p *persistence) watchLists(w *fsnotify.Watcher) error {
	if err := w.Add(p.basePath); err != nil {
		return fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}
	entries, err := os.ReadDir(p.basePath)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", p.basePath, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(p.basePath, e.Name())
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}
	return nil
}

func (p *persistence) forward(ctx context.Context, w *fsnotify.Watcher, events chan<- Event) {
	defer close(events)
	defer func() {
		if err := w.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
		}
	}()

	var (
		c     coalescer
		timer *time.Timer
		fire  <-chan time.Time
	)
	note := func(ev Event) {
		c.add(ev)
		if timer == nil {
			timer = time.NewTimer(settle)
			fire = timer.C
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-fire:
			timer, fire = nil, nil
			for _, ev := range c.drain() {
				select {
				case events <- ev:
				default:
					// Reader is behind; it rebuilds on the next one.
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
			note(Event{Type: EventListsInvalidated})
		case fe, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Dir(fe.Name) == filepath.Clean(p.basePath) {
				// A list directory was created or removed.
				if fe.Op&fsnotify.Create != 0 {
					if err := w.Add(fe.Name); err != nil {
						fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", fe.Name, err)
					}
				}
				note(Event{Type: EventListsInvalidated})
				continue
			}
			if list := p.listForPath(fe.Name); list != "" {
				note(Event{Type: EventListChanged, List: list})
			} else {
				note(Event{Type: EventListsInvalidated})
			}
		}
	}
}

// listForPath decodes the list directory holding an item file.
func (p *persistence) listForPath(path string) string {
	dir := filepath.Dir(path)
	if filepath.Dir(dir) != filepath.Clean(p.basePath) {
		return ""
	}
	name, err := hex.DecodeString(filepath.Base(dir))
	if err != nil {
		return ""
	}
	return string(name)
}

// coalescer folds a burst into one event per list. An invalidation
// covers every list, so it replaces whatever else is pending.
type coalescer struct {
	invalidated bool
	lists       []string
}

func (c *coalescer) add(ev Event) {
	if ev.Type == EventListsInvalidated {
		c.invalidated, c.lists = true, nil
		return
	}
	if c.invalidated {
		return
	}
	for _, l := range c.lists {
		if l == ev.List {
			return
		}
	}
	c.lists = append(c.lists, ev.List)
}

func (c *coalescer) drain() []Event {
	var out []Event
	if c.invalidated {
		out = []Event{{Type: EventListsInvalidated}}
	}
	for _, l := range c.lists {
		out = append(out, Event{Type: EventListChanged, List: l})
	}
	*c = coalescer{}
	return out
}
