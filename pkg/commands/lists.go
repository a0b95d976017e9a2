package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/runner/lists"
)

func addLists(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "List the known lists and their sizes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			l := lists.Lists{Service: svc, Out: cmd.OutOrStdout()}
			err = l.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
