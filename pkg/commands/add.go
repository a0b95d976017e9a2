package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/commands/options"
	"tableflip.dev/sectionlist/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	xo := &options.IndexOptions{}
	io := &options.IDOptions{}
	ao := &add.Add{}

	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add an item to a list.",
		Example: `
sectionlist add Ada Lovelace
sectionlist add Grace Hopper --sort "Hopper, Grace" --header Navy --pinned
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			idx, err := xo.Resolve(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			ao.List = lo.List
			ao.Name = strings.Join(args, " ")
			ao.ShowID = io.ShowID
			ao.Index = idx
			ao.Service = svc
			ao.Out = cmd.OutOrStdout()
			err = ao.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&ao.SortName, "sort", "",
		"Key used by --by sort, for example a surname first.")
	cmd.Flags().StringVar(&ao.Header, "header", "",
		"Explicit section used by --headers.")
	cmd.Flags().BoolVar(&ao.Pinned, "pinned", false,
		"Pin the item into the first section.")

	options.AddListArgs(cmd, lo, defaultList())
	options.AddIndexArgs(cmd, xo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
