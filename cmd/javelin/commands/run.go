package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [file] [-- args...]",
		Short: "Build and run the specified Java file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Everything after -- belongs to the program, even when no
			// entry file precedes it.
			entry := args
			var extra []string
			if at := cmd.ArgsLenAtDash(); at >= 0 {
				entry, extra = args[:at], args[at:]
			} else if len(args) > 1 {
				entry, extra = args[:1], args[1:]
			}
			return c.app.Run(cmd.Context(), entryArg(entry), options(cmd), extra)
		},
	}
}
