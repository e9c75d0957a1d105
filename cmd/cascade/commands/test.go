package commands

import "github.com/spf13/cobra"

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the unit tests of an existing build only",
		Args:  cobra.NoArgs,
		RunE:  c.runE(false, true),
	}
}
