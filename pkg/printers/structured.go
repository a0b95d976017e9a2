package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/sectionindex"
)

// Format selects a renderer for the show command.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// ParseFormat accepts pretty, table, json or yaml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPretty, nil
	case FormatPretty, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("printers: unknown output format %q", s)
	}
}

// SectionView is the serialised form of one section.
type SectionView struct {
	Section int `json:"section" yaml:"section"`
	// Title is omitted for reserved sections.
	Title string     `json:"title,omitempty" yaml:"title,omitempty"`
	Rows  int        `json:"rows" yaml:"rows"`
	Items []ItemView `json:"items" yaml:"items"`
}

// ItemView is one row of a SectionView.
type ItemView struct {
	Row      int    `json:"row" yaml:"row"`
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Pinned   bool   `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	Reserved bool   `json:"reserved,omitempty" yaml:"reserved,omitempty"`
}

// Sections snapshots idx through its query methods.
func Sections(idx *app.Index, extra map[int]int) ([]SectionView, error) {
	views := make([]SectionView, 0, idx.NumberOfSections())
	for s := 0; s < idx.NumberOfSections(); s++ {
		title, _, err := idx.TitleForHeader(s)
		if err != nil {
			return nil, err
		}
		n, err := idx.RowsInSection(s)
		if err != nil {
			return nil, err
		}
		n += extra[s]
		view := SectionView{Section: s, Title: title, Rows: n, Items: make([]ItemView, 0, n)}
		for r := 0; r < n; r++ {
			it, ok, err := idx.ElementAt(sectionindex.At(s, r))
			if err != nil {
				return nil, err
			}
			if !ok {
				view.Items = append(view.Items, ItemView{Row: r, Reserved: true})
				continue
			}
			view.Items = append(view.Items, ItemView{Row: r, ID: it.ID, Name: it.Name, Pinned: it.Pinned})
		}
		views = append(views, view)
	}
	return views, nil
}

// Structured writes idx as JSON or YAML.
type Structured struct {
	Out    io.Writer
	Format Format
	// Extra rows shown per section on top of its count, as with app.RowsWith.
	Extra map[int]int
}

func (sp *Structured) Index(idx *app.Index) error {
	views, err := Sections(idx, sp.Extra)
	if err != nil {
		return err
	}
	var b []byte
	switch sp.Format {
	case FormatYAML:
		b, err = yaml.Marshal(views)
	default:
		b, err = json.MarshalIndent(views, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return fmt.Errorf("printers: encode %s: %w", sp.Format, err)
	}
	_, err = sp.Out.Write(b)
	return err
}
