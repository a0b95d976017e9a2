package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/commands/options"
	"tableflip.dev/sectionlist/pkg/runner/browse"
	"tableflip.dev/sectionlist/pkg/runner/pick"
)

func addBrowse(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	xo := &options.IndexOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a list interactively.",
		Long: `Browse a list in a full screen view that follows changes on disk.

enter selects, / filters, p toggles the pin, q quits.`,
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
			b := browse.Browse{
				List:    lo.List,
				Index:   idx,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			err = b.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo, defaultList())
	options.AddIndexArgs(cmd, xo)

	topLevel.AddCommand(cmd)
}

func addPick(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	xo := &options.IndexOptions{}
	size := 10

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick one item from a prompt and print it.",
		Example: `
sectionlist pick --list contacts
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
			p := pick.Pick{
				List:    lo.List,
				Index:   idx,
				Size:    size,
				Service: svc,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			err = p.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&size, "size", size, "Rows shown by the prompt.")
	options.AddListArgs(cmd, lo, defaultList())
	options.AddIndexArgs(cmd, xo)

	topLevel.AddCommand(cmd)
}
