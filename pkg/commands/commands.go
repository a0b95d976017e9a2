package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/sectionlist/pkg/app"
	"tableflip.dev/sectionlist/pkg/commands/options"
	"tableflip.dev/sectionlist/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "sectionlist",
		Short: base.Wrap80("Alphabetically sectioned lists on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addPin(topLevel)
	addImport(topLevel)
	addLists(topLevel)
	addBrowse(topLevel)
	addPick(topLevel)
	addVersion(topLevel)
}

// defaultList is used for --list defaults at registration time; a broken
// config surfaces later from load.
func defaultList() string {
	if cfg, err := store.LoadConfig(); err == nil {
		return cfg.DefaultList()
	}
	return "contacts"
}

func load() (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return &app.Service{Persistence: p}, cfg, nil
}
