package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Report errors as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

// FormatOptions selects how an index is rendered.
type FormatOptions struct {
	Format string
	Width  int
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", string(printers.FormatPretty),
		"Output format. One of 'pretty', 'table', 'json' or 'yaml'.")
	cmd.Flags().IntVar(&o.Width, "width", 80,
		"Wrap pretty output at this many columns, 0 to disable.")
}

// Parse validates the chosen format.
func (o *FormatOptions) Parse() (printers.Format, error) {
	return printers.ParseFormat(o.Format)
}
