package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sectionlist/pkg/app"
)

// Table renders one line per coordinate.
type Table struct {
	Out    io.Writer
	ShowID bool
	// MaxColWidth truncates the name column; 0 leaves it alone.
	MaxColWidth uint
}

func (tp *Table) Rows(rows []app.Row) {
	tbl := uitable.New()
	tbl.Separator = "  "
	if tp.MaxColWidth > 0 {
		tbl.MaxColWidth = tp.MaxColWidth
	}
	bold := color.New(color.Bold).SprintFunc()
	header := []interface{}{bold("SECTION"), bold("ROW"), bold("HEADER"), bold("NAME")}
	if tp.ShowID {
		header = append(header, bold("ID"))
	}
	tbl.AddRow(header...)

	for _, row := range rows {
		if row.Header {
			continue
		}
		name, id := "-", ""
		if row.Item != nil {
			name, id = row.Item.String(), row.Item.ID
		}
		title := row.Title
		if title == "" && row.Reserved() {
			title = "-"
		}
		cells := []interface{}{row.At.Section, row.At.Row, title, name}
		if tp.ShowID {
			cells = append(cells, id)
		}
		tbl.AddRow(cells...)
	}

	out := tp.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, tbl)
}
