package browse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/tui/browser"
)

var errNotTerminal = errors.New("browse: stdout is not a terminal, try show")

type Browse struct {
	List  string
	Index app.IndexOptions

	Service *app.Service
	Out     io.Writer
	// Terminal reports whether the UI can take over the screen.
	Terminal func() bool
}

func (n *Browse) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not browse, no service")
	}
	tty := n.Terminal
	if tty == nil {
		tty = stdoutIsTerminal
	}
	if !tty() {
		return errNotTerminal
	}

	it, err := browser.Run(ctx, n.Service, n.List, n.Index)
	if err != nil {
		return err
	}
	if it == nil {
		return nil
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, it.String())
	return nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
