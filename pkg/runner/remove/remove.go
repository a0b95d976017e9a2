package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/sectionlist/pkg/app"
)

// Remove deletes one item, or changes its pin when Pin is set.
type Remove struct {
	List string
	Ref  string

	// Pin, when non-nil, sets the pinned flag instead of deleting.
	Pin *bool

	Service *app.Service
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Pin != nil {
		it, err := n.Service.SetPinned(ctx, n.List, n.Ref, *n.Pin)
		if err != nil {
			return err
		}
		verb := "unpinned"
		if it.Pinned {
			verb = "pinned"
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", verb, it.Name)
		return nil
	}

	it, err := n.Service.Remove(ctx, n.List, n.Ref)
	if err != nil {
		return err
	}
	_, _ = color.New(color.Faint).Fprintf(out, "removed %s (%s)\n", it.Name, it.ID)
	return nil
}
