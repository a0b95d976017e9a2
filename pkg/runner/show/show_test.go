package show

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/item"
	"tableflip.dev/sectionlist/pkg/printers"
	"tableflip.dev/sectionlist/pkg/sectionindex"
	"tableflip.dev/sectionlist/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string     { return t.path }
func (t testConfig) DefaultList() string  { return "fruit" }
func (t testConfig) Order() string        { return "asc" }
func (t testConfig) KeyField() string     { return "name" }
func (t testConfig) PinnedHeader() string { return "★" }

func newService(t *testing.T, names ...string) *app.Service {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range names {
		it := item.New("fruit", name)
		it.Created = item.Timestamp{Time: base.Add(time.Duration(i) * time.Minute)}
		if err := p.Store(it); err != nil {
			t.Fatalf("store %q: %v", name, err)
		}
	}
	return &app.Service{Persistence: p}
}

func TestShowPretty(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	s := Show{
		List:    "fruit",
		Format:  printers.FormatPretty,
		Service: newService(t, "apple", "Banana", "avocado", "cherry"),
		Out:     &out,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	got := out.String()
	for _, want := range []string{"fruit", "4 items", "A\n", "  apple\n  avocado\n", "B\n", "C\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestShowPrettyCountsPinnedOnce(t *testing.T) {
	color.NoColor = true
	svc := newService(t, "apple", "Banana")
	if _, err := svc.SetPinned(context.Background(), "fruit", "apple", true); err != nil {
		t.Fatalf("pin: %v", err)
	}
	var out bytes.Buffer
	s := Show{
		List:    "fruit",
		Index:   app.IndexOptions{Pin: true},
		Service: svc,
		Out:     &out,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := out.String(); !strings.HasPrefix(got, "fruit - 2 items\n") {
		t.Fatalf("expected 2 items in the title, got:\n%s", got)
	}
}

func TestShowJSONWithReservations(t *testing.T) {
	var out bytes.Buffer
	s := Show{
		List:            "fruit",
		Format:          printers.FormatJSON,
		ReserveSections: []Reservation{{At: 0, Rows: 2}},
		Service:         newService(t, "apple", "Banana"),
		Out:             &out,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	var views []printers.SectionView
	if err := json.Unmarshal(out.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(views))
	}
	if views[0].Title != "" || views[0].Rows != 2 {
		t.Fatalf("expected a reserved first section of 2 rows, got %+v", views[0])
	}
	if views[1].Title != "A" || views[2].Title != "B" {
		t.Fatalf("expected A then B, got %q, %q", views[1].Title, views[2].Title)
	}
}

func TestShowTableWithReservedRow(t *testing.T) {
	var out bytes.Buffer
	s := Show{
		List:        "fruit",
		Format:      printers.FormatTable,
		ReserveRows: []sectionindex.Coordinate{sectionindex.At(0, 0)},
		Service:     newService(t, "apple", "avocado"),
		Out:         &out,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header line, reserved row, apple, avocado
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[3], "avocado") {
		t.Fatalf("expected the last row to be avocado, got %q", lines[3])
	}
}

func TestShowStructuredWithReservedRow(t *testing.T) {
	for _, format := range []printers.Format{printers.FormatJSON, printers.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var out bytes.Buffer
			s := Show{
				List:        "fruit",
				Format:      format,
				ReserveRows: []sectionindex.Coordinate{sectionindex.At(0, 0)},
				Service:     newService(t, "apple", "avocado"),
				Out:         &out,
			}
			if err := s.Do(context.Background()); err != nil {
				t.Fatalf("show: %v", err)
			}
			got := out.String()
			for _, want := range []string{"apple", "avocado", "reserved"} {
				if !strings.Contains(got, want) {
					t.Fatalf("expected output to contain %q, got:\n%s", want, got)
				}
			}
		})
	}

	var out bytes.Buffer
	s := Show{
		List:        "fruit",
		Format:      printers.FormatJSON,
		ReserveRows: []sectionindex.Coordinate{sectionindex.At(0, 0)},
		Service:     newService(t, "apple", "avocado"),
		Out:         &out,
	}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	var views []printers.SectionView
	if err := json.Unmarshal(out.Bytes(), &views); err != nil {
		t.Fatalf("decode: %v\n%s", err, out.String())
	}
	if len(views) != 1 || views[0].Rows != 3 {
		t.Fatalf("expected one section of 3 rows, got %+v", views)
	}
	items := views[0].Items
	if !items[0].Reserved || items[1].Name != "apple" || items[2].Name != "avocado" {
		t.Fatalf("unexpected rows %+v", items)
	}
}

func TestShowBadReservation(t *testing.T) {
	s := Show{
		List:            "fruit",
		ReserveSections: []Reservation{{At: 5, Rows: 1}},
		Service:         newService(t, "apple"),
		Out:             &bytes.Buffer{},
	}
	err := s.Do(context.Background())
	if !errors.Is(err, sectionindex.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestShowNoService(t *testing.T) {
	s := Show{List: "fruit"}
	if err := s.Do(context.Background()); err == nil {
		t.Fatalf("expected an error without a service")
	}
}
