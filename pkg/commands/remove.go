package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/commands/options"
	"tableflip.dev/sectionlist/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:     "remove <id|name>",
		Aliases: []string{"rm"},
		Short:   "Remove an item by ID or name.",
		Example: `
sectionlist remove 3f2a9c01d4e5b6a7
sectionlist rm Ada Lovelace --list contacts
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				List:    lo.List,
				Ref:     strings.Join(args, " "),
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo, defaultList())

	topLevel.AddCommand(cmd)
}

func addPin(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	unpin := false

	cmd := &cobra.Command{
		Use:   "pin <id|name>",
		Short: "Pin an item into the first section, or unpin it.",
		Example: `
sectionlist pin Ada Lovelace
sectionlist pin Ada Lovelace --unpin
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			pinned := !unpin
			r := remove.Remove{
				List:    lo.List,
				Ref:     strings.Join(args, " "),
				Pin:     &pinned,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			err = r.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&unpin, "unpin", false, "Unpin instead.")
	options.AddListArgs(cmd, lo, defaultList())

	topLevel.AddCommand(cmd)
}
