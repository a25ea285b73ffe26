// Package commands implements the CLI commands for the lez build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lezer-parser/lezer/internal/app"
	"github.com/lezer-parser/lezer/internal/build"
	"github.com/lezer-parser/lezer/internal/engine/release"
)

// CLI represents the command line interface for lez.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Packages(ctx context.Context) error
	Build(ctx context.Context, names []string, opts app.BuildOptions) error
	Watch(ctx context.Context) error
	Release(ctx context.Context, name string, opts release.Options) error
	ReleaseAll(ctx context.Context, opts release.AllOptions) error
	BumpDeps(ctx context.Context, version string) error
	Notes(ctx context.Context, name string) error
	Run(ctx context.Context, args []string, opts app.RunOptions) error
	Install(ctx context.Context, opts app.InstallOptions) error
	Status(ctx context.Context) error
	Commit(ctx context.Context, message string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lez",
		Short:         "A build tool for the lezer parser packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPackagesCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newReleaseCmd())
	rootCmd.AddCommand(c.newReleaseAllCmd())
	rootCmd.AddCommand(c.newBumpDepsCmd())
	rootCmd.AddCommand(c.newNotesCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCommitCmd())
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
