package imports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/sectionlist/pkg/app"
)

// Import loads items from Path, or from In when Path is "-" or empty.
type Import struct {
	List string
	Path string

	Service *app.Service
	In      io.Reader
	Out     io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}

	r := n.In
	if n.Path != "" && n.Path != "-" {
		f, err := os.Open(n.Path)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		r = os.Stdin
	}

	added, err := n.Service.Import(ctx, n.List, r)
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if len(added) > 0 {
		_, _ = fmt.Fprintf(out, "imported %d into %s\n", len(added), n.List)
	}
	return err
}
