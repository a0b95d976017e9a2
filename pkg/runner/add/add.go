package add

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/printers"
)

type Add struct {
	List     string
	Name     string
	SortName string
	Header   string
	Pinned   bool
	ShowID   bool

	// Index shapes the listing printed after the add.
	Index app.IndexOptions

	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if _, err := n.Service.Add(ctx, n.List, n.Name,
		app.WithSortName(n.SortName),
		app.WithHeader(n.Header),
		app.WithPinned(n.Pinned),
	); err != nil {
		return err
	}

	idx, err := n.Service.Build(ctx, n.List, n.Index)
	if err != nil {
		return err
	}
	rows, err := app.Rows(idx)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out, ShowID: n.ShowID}
	items, _ := n.Service.Items(ctx, n.List)
	pp.TitleWithCount(n.List, len(items))
	pp.Rows(rows)
	return nil
}
