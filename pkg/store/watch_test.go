package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/sectionlist/pkg/item"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) DefaultList() string  { return "contacts" }
func (t testConfig) Order() string        { return "asc" }
func (t testConfig) KeyField() string     { return "name" }
func (t testConfig) PinnedHeader() string { return "★" }

func TestPersistenceWatchEmitsListChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Store(item.New("contacts", "Ada Lovelace")); err != nil {
		t.Fatalf("store item: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventListsInvalidated {
				return
			}
			if evt.Type == EventListChanged {
				if evt.List != "contacts" {
					t.Fatalf("expected list 'contacts', got %q", evt.List)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for list change event")
		}
	}
}

func TestCoalescerOneEventPerList(t *testing.T) {
	var c coalescer
	for i := 0; i < 5; i++ {
		c.add(Event{Type: EventListChanged, List: "contacts"})
	}
	c.add(Event{Type: EventListChanged, List: "fruit"})

	got := c.drain()
	if len(got) != 2 || got[0].List != "contacts" || got[1].List != "fruit" {
		t.Fatalf("expected contacts then fruit, got %+v", got)
	}
	if got := c.drain(); len(got) != 0 {
		t.Fatalf("expected drain to reset, got %+v", got)
	}
}

func TestCoalescerInvalidationWins(t *testing.T) {
	var c coalescer
	c.add(Event{Type: EventListChanged, List: "contacts"})
	c.add(Event{Type: EventListsInvalidated})
	c.add(Event{Type: EventListChanged, List: "fruit"})

	got := c.drain()
	if len(got) != 1 || got[0].Type != EventListsInvalidated {
		t.Fatalf("expected a single invalidation, got %+v", got)
	}
}

func TestListForPath(t *testing.T) {
	base := t.TempDir()
	p := &persistence{basePath: base}

	if got := p.listForPath(filepath.Join(base, toList("a/b-c"), "0011")); got != "a/b-c" {
		t.Fatalf("expected a/b-c, got %q", got)
	}
	for _, path := range []string{
		filepath.Join(base, "zz", "0011"),
		filepath.Join(base, "0011"),
		filepath.Join(base, toList("x"), "deeper", "0011"),
	} {
		if got := p.listForPath(path); got != "" {
			t.Fatalf("expected no list for %s, got %q", path, got)
		}
	}
}
