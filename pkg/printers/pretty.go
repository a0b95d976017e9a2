package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/sectionlist/pkg/app"
)

// PrettyPrint renders a sectioned list with bold section titles.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
	// Width wraps long names; 0 disables wrapping.
	Width int
}

const indent = "  "

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// TitleWithCount prints the list name and how many items it holds.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " item")
	default:
		_, _ = c.Fprintln(pp.out(), " items")
	}
}

// Rows prints rows as returned by app.Rows.
func (pp *PrettyPrint) Rows(rows []app.Row) {
	w := pp.out()
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, indent+"none\n\n")
		return
	}

	h := color.New(color.Bold, color.FgHiCyan)
	t := color.New()
	f := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Faint)

	for i, row := range rows {
		switch {
		case row.Header:
			if i > 0 {
				_, _ = t.Fprintln(w, "")
			}
			_, _ = h.Fprintln(w, row.Title)
		case row.Reserved():
			_, _ = f.Fprintf(w, "%s(reserved %s)\n", indent, row.At)
		default:
			name := row.Item.String()
			if pp.Width > len(indent) {
				name = wordwrap.String(name, pp.Width-len(indent))
			}
			lines := strings.Split(name, "\n")
			_, _ = t.Fprint(w, indent+lines[0])
			if pp.ShowID {
				_, _ = y.Fprintf(w, "  %s", row.Item.ID)
			}
			_, _ = t.Fprintln(w, "")
			for _, more := range lines[1:] {
				_, _ = t.Fprintln(w, indent+indent+more)
			}
		}
	}
	_, _ = fmt.Fprintln(w, "")
}
