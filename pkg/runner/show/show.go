package show

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/printers"
	"tableflip.dev/sectionlist/pkg/sectionindex"
)

// Reservation is a placeholder section of Rows rows inserted at At.
type Reservation struct {
	At   int
	Rows int
}

type Show struct {
	List   string
	Index  app.IndexOptions
	Format printers.Format
	ShowID bool
	Width  int

	// ReserveSections are applied in order, then ReserveRows.
	ReserveSections []Reservation
	ReserveRows     []sectionindex.Coordinate

	Service *app.Service
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	idx, err := n.Service.Build(ctx, n.List, n.Index)
	if err != nil {
		return err
	}
	for _, r := range n.ReserveSections {
		if err := idx.ReserveSection(r.At, r.Rows); err != nil {
			return err
		}
	}
	// A reserved row is extra content the host shows on top of the
	// section's count.
	extra := map[int]int{}
	for _, at := range n.ReserveRows {
		if err := idx.ReserveRow(at); err != nil {
			return err
		}
		extra[at.Section]++
	}

	switch n.Format {
	case printers.FormatJSON, printers.FormatYAML:
		sp := printers.Structured{Out: out, Format: n.Format, Extra: extra}
		return sp.Index(idx)
	}

	rows, err := app.RowsWith(idx, extra)
	if err != nil {
		return err
	}
	if n.Format == printers.FormatTable {
		tp := printers.Table{Out: out, ShowID: n.ShowID}
		tp.Rows(rows)
		return nil
	}

	pp := printers.PrettyPrint{Out: out, ShowID: n.ShowID, Width: n.Width}
	count, _ := app.Count(rows, n.Index)
	pp.TitleWithCount(n.List, count)
	pp.Rows(rows)
	return nil
}
