// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ListOptions names the list a command works on.
type ListOptions struct {
	List string
}

// AddListArgs registers --list; an unset flag falls back to fallback.
func AddListArgs(cmd *cobra.Command, o *ListOptions, fallback string) {
	cmd.Flags().StringVarP(&o.List, "list", "l", fallback,
		"Specify the list.")
}
