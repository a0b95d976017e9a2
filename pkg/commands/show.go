package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/commands/options"
	"tableflip.dev/sectionlist/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	xo := &options.IndexOptions{}
	fo := &options.FormatOptions{}
	io := &options.IDOptions{}
	ro := &options.ReserveOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a list split into alphabetical sections.",
		Example: `
sectionlist show
sectionlist show --list fruit --order desc
sectionlist show --by sort -o table
sectionlist show --headers -o yaml
sectionlist show --reserve-section 0:1 --reserve-row 1:0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			idx, err := xo.Resolve(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			format, err := fo.Parse()
			if err != nil {
				return output.HandleError(err)
			}
			sections, rows, err := ro.Parse()
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				List:            lo.List,
				Index:           idx,
				Format:          format,
				ShowID:          io.ShowID,
				Width:           fo.Width,
				ReserveSections: sections,
				ReserveRows:     rows,
				Service:         svc,
				Out:             cmd.OutOrStdout(),
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo, defaultList())
	options.AddIndexArgs(cmd, xo)
	options.AddFormatArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddReserveArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
