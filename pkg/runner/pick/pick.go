package pick

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/item"
)

// Pick prompts for one item of a list and prints it.
type Pick struct {
	List  string
	Index app.IndexOptions
	Size  int

	Service *app.Service
	In      io.Reader
	Out     io.Writer
}

var templates = &promptui.SelectTemplates{
	Label:    "{{ . }}?",
	Active:   "{{ if .Header }}{{ .Title | bold | cyan }}{{ else }}➜  {{ .Item.Name | bold }}{{ end }}",
	Inactive: "{{ if .Header }}{{ .Title | faint | cyan }}{{ else }}   {{ .Item.Name }}{{ end }}",
	Selected: "{{ if .Item }}{{ .Item.Name | bold | green }}{{ end }}",
	Details: `{{ if .Item }}
--------- Details ----------
{{ .At }}{{ if .Item.SortName }} sort: {{ .Item.SortName }}{{ end }}{{ if .Item.Pinned }} pinned{{ end }}
{{ end }}`,
}

func (n *Pick) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not pick, no service")
	}
	idx, err := n.Service.Build(ctx, n.List, n.Index)
	if err != nil {
		return err
	}
	rows, err := app.Rows(idx)
	if err != nil {
		return err
	}
	if idx.NumberOfSections() == 0 {
		return fmt.Errorf("pick: list %q is empty", n.List)
	}

	in, out := n.In, n.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = color.Output
	}

	size := n.Size
	if size <= 0 {
		size = 10
	}
	prompt := promptui.Select{
		HideHelp:  true,
		Label:     n.List,
		Items:     rows,
		Templates: templates,
		Size:      size,
		Searcher:  searcher(rows),
		Stdin:     io.NopCloser(in),
		Stdout:    nopCloser{out},
	}

	cursor := firstChoice(rows)
	for {
		i, _, err := prompt.RunCursorAt(cursor, 0)
		if err != nil {
			return fmt.Errorf("pick: %w", err)
		}
		it, err := resolve(idx, rows, i)
		if err != nil {
			return err
		}
		if it != nil {
			_, _ = fmt.Fprintln(out, it.String())
			return nil
		}
		// Headers are not choices, prompt again just past the header.
		cursor = i + 1
		if cursor >= len(rows) {
			cursor = firstChoice(rows)
		}
	}
}

// resolve maps a chosen row back through the index; headers and reserved
// coordinates have no item.
func resolve(idx *app.Index, rows []app.Row, i int) (*item.Item, error) {
	if i < 0 || i >= len(rows) || rows[i].Header {
		return nil, nil
	}
	it, ok, err := idx.ElementAt(rows[i].At)
	if err != nil || !ok {
		return nil, err
	}
	return it, nil
}

func firstChoice(rows []app.Row) int {
	for i, r := range rows {
		if r.Item != nil {
			return i
		}
	}
	return 0
}

func searcher(rows []app.Row) func(input string, index int) bool {
	return func(input string, index int) bool {
		r := rows[index]
		if r.Item == nil {
			return false
		}
		name := strings.Replace(strings.ToLower(r.Item.Name), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
