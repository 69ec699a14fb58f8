// Package commands implements the CLI commands for the javelin build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/javelin-build/javelin/internal/adapters/telemetry/progrock"
	"github.com/javelin-build/javelin/internal/app"
	"github.com/javelin-build/javelin/internal/build"
	"github.com/javelin-build/javelin/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for javelin.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, entry string, opts app.Options) (*app.BuildResult, error)
	Run(ctx context.Context, entry string, opts app.Options, args []string) error
	Tree(ctx context.Context, entry string, opts app.Options) error
	Clean(ctx context.Context) error
	Init(force bool) error
	SetConfigPath(path string)
	SetTelemetry(t ports.Telemetry)
	Close() error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "javelin",
		Short:         "A fast, incremental build tool for Java",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	rootCmd.PersistentFlags().StringP("config", "c", "javelin.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose progress output")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Force rebuild, ignoring the cache")
	rootCmd.PersistentFlags().Bool("auto-implicit", false, "Automatically include implicit dependencies in compilation")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		a.SetConfigPath(configPath)

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			a.SetTelemetry(progrock.New())
		}
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newTreeCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	defer func() { _ = c.app.Close() }()
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

// options collects the shared per-invocation flags.
func options(cmd *cobra.Command) app.Options {
	force, _ := cmd.Flags().GetBool("force")
	autoImplicit, _ := cmd.Flags().GetBool("auto-implicit")
	return app.Options{
		Force:        force,
		AutoImplicit: autoImplicit,
	}
}

// entryArg returns the optional positional entry file.
func entryArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
