package browser

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/item"
	"tableflip.dev/sectionlist/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) DefaultList() string  { return "contacts" }
func (t testConfig) Order() string        { return "asc" }
func (t testConfig) KeyField() string     { return "name" }
func (t testConfig) PinnedHeader() string { return "★" }

func newTestModel(t *testing.T, opts app.IndexOptions, names ...string) (*Model, *app.Service) {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	svc := &app.Service{Persistence: p}
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range names {
		it := item.New("contacts", name)
		it.Created = item.Timestamp{Time: base.Add(time.Duration(i) * time.Minute)}
		if err := p.Store(it); err != nil {
			t.Fatalf("store %q: %v", name, err)
		}
	}
	m := New(context.Background(), svc, "contacts", opts)
	m.Update(m.rebuild()())
	return m, svc
}

func press(m *Model, key tea.KeyPressMsg) tea.Cmd {
	_, cmd := m.Update(key)
	return cmd
}

var (
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestRowsIncludeReservedSummary(t *testing.T) {
	m, _ := newTestModel(t, app.IndexOptions{}, "apple", "Banana", "avocado")

	if got := m.idx.NumberOfSections(); got != 3 {
		t.Fatalf("expected summary + 2 sections, got %d", got)
	}
	if title, ok, _ := m.idx.TitleForHeader(summarySection); ok || title != "" {
		t.Fatalf("summary section should have no title, got %q", title)
	}
	// summary, A, apple, avocado, B, Banana
	if len(m.rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(m.rows))
	}
	view := m.View()
	if !strings.Contains(view, "3 items in 2 sections") {
		t.Fatalf("summary missing from view:\n%s", view)
	}
}

func TestEnterResolvesSelectionThroughIndex(t *testing.T) {
	m, _ := newTestModel(t, app.IndexOptions{}, "apple", "Banana", "avocado")

	press(m, keyEnter)
	if m.Selected() != nil {
		t.Fatalf("summary row should not select an item")
	}
	if !strings.Contains(m.status, "nothing to select at 0:0") {
		t.Fatalf("unexpected status %q", m.status)
	}

	press(m, keyDown) // A
	press(m, keyEnter)
	if m.Selected() != nil || !strings.Contains(m.status, "section A") {
		t.Fatalf("header row should not select, status %q", m.status)
	}

	press(m, keyDown) // apple
	press(m, keyDown) // avocado
	press(m, keyEnter)
	if m.Selected() == nil || m.Selected().Name != "avocado" {
		t.Fatalf("expected avocado selected, got %+v (status %q)", m.Selected(), m.status)
	}
	if !strings.Contains(m.status, "1:1") {
		t.Fatalf("expected coordinate 1:1 in status %q", m.status)
	}
}

func TestPinRebuildsWithPinnedSection(t *testing.T) {
	m, svc := newTestModel(t, app.IndexOptions{Pin: true, PinnedHeader: "★"}, "apple", "Banana")

	press(m, keyDown) // A
	press(m, keyDown) // apple
	cmd := press(m, tea.KeyPressMsg{Code: 'p', Text: "p"})
	if cmd == nil {
		t.Fatalf("expected pin command")
	}
	if _, ok := cmd().(refreshMsg); !ok {
		t.Fatalf("expected refresh after pin")
	}
	items, err := svc.Items(context.Background(), "contacts")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if !items[0].Pinned {
		t.Fatalf("expected apple pinned: %+v", items[0])
	}

	m.Update(m.rebuild()())
	if title, ok, _ := m.idx.TitleForHeader(1); !ok || title != "★" {
		t.Fatalf("expected pinned section after summary, got %q", title)
	}
	if got := m.summary(); got != "2 items in 2 sections" {
		t.Fatalf("expected pinned apple counted once, got %q", got)
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, app.IndexOptions{}, "apple")
	cmd := press(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestBuildErrorSurfacesInStatus(t *testing.T) {
	m, _ := newTestModel(t, app.IndexOptions{})
	m.Update(errMsg{err: context.Canceled})
	if !strings.HasPrefix(m.status, "ERR: ") {
		t.Fatalf("expected error status, got %q", m.status)
	}
}

func TestPaletteFaint(t *testing.T) {
	p := palette{accent: "#000000", background: "#ffffff"}
	if got := p.faint(0); got != "#000000" {
		t.Fatalf("expected no blend to keep the accent, got %s", got)
	}
	if got := p.faint(1); got != "#ffffff" {
		t.Fatalf("expected a full blend to reach the background, got %s", got)
	}
	if got := (palette{accent: "nope", background: "#ffffff"}).faint(0.5); got != "nope" {
		t.Fatalf("expected a bad accent to fall back, got %s", got)
	}
}
