package lists

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/sectionlist/pkg/app"
)

type Lists struct {
	Service *app.Service
	Out     io.Writer
}

func (n *Lists) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	names, err := n.Service.Lists(ctx)
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if len(names) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(out, "no lists")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold).SprintFunc()
	tbl.AddRow(bold("LIST"), bold("ITEMS"))
	for _, name := range names {
		items, err := n.Service.Items(ctx, name)
		if err != nil {
			return err
		}
		tbl.AddRow(name, len(items))
	}
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
