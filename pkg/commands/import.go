package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/sectionlist/pkg/commands/options"
	"tableflip.dev/sectionlist/pkg/runner/imports"
)

func addImport(topLevel *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import items, one per line.",
		Long: `Import items, one per line, from a file or stdin.

Each line is name[<TAB>sort[<TAB>header]]. A leading * pins the item.
Blank lines and lines starting with # are skipped.`,
		Example: `
sectionlist import people.txt
cat people.txt | sectionlist import --list contacts
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			i := imports.Import{
				List:    lo.List,
				Service: svc,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				i.Path = args[0]
			}
			err = i.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddListArgs(cmd, lo, defaultList())

	topLevel.AddCommand(cmd)
}
