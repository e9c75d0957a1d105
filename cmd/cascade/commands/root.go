// Package commands implements the CLI commands for the cascade build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cascade/internal/build"
	"go.trai.ch/cascade/internal/core/domain"
)

// CLI represents the command line interface for cascade.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts domain.Options) error
	Defaults() (domain.Options, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "cascade",
		Short: "Build and test a CMake project in one step",
		Long: `cascade installs dependencies, generates and builds a CMake project,
then runs its unit tests, optionally under a coverage tool.
Without a subcommand both the build and the test half run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runE(false, false),
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	registerFlags(rootCmd)
	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) runE(onlyBuild, onlyTest bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		defaults, err := c.app.Defaults()
		if err != nil {
			return err
		}
		opts, err := resolveOptions(cmd.Flags(), defaults)
		if err != nil {
			return err
		}
		opts.OnlyBuild = onlyBuild
		opts.OnlyTest = onlyTest
		return c.app.Run(cmd.Context(), opts)
	}
}
