package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [file]",
		Short: "Show the dependency tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Tree(cmd.Context(), entryArg(args), options(cmd))
		},
	}
}
