package imports

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/sectionlist/pkg/app"
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

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return &app.Service{Persistence: p}
}

func TestImportFromReader(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	n := Import{
		List:    "contacts",
		Path:    "-",
		Service: svc,
		In:      strings.NewReader("# people\nAda Lovelace\n\nAlan Turing\n"),
		Out:     &out,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := out.String(); got != "imported 2 into contacts\n" {
		t.Fatalf("unexpected output %q", got)
	}
	items, err := svc.Items(context.Background(), "contacts")
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestImportFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.txt")
	if err := os.WriteFile(path, []byte("*Grace Hopper\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	svc := newService(t)
	n := Import{List: "contacts", Path: path, Service: svc, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("import: %v", err)
	}
	items, _ := svc.Items(context.Background(), "contacts")
	if len(items) != 1 || !items[0].Pinned || items[0].Name != "Grace Hopper" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestImportMissingFile(t *testing.T) {
	n := Import{List: "contacts", Path: filepath.Join(t.TempDir(), "nope"), Service: newService(t)}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
