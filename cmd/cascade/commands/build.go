package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Install dependencies, generate and build only",
		Args:  cobra.NoArgs,
		RunE:  c.runE(true, false),
	}
}
