package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [file]",
		Short: "Build the specified Java file and its dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Build(cmd.Context(), entryArg(args), options(cmd))
			return err
		},
	}
}
