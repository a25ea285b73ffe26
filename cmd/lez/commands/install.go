package commands

import (
	"github.com/spf13/cobra"

	"github.com/lezer-parser/lezer/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Clone missing package checkouts and install their dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noDeps, _ := cmd.Flags().GetBool("no-deps")
			return c.app.Install(cmd.Context(), app.InstallOptions{NoDeps: noDeps})
		},
	}
	cmd.Flags().Bool("no-deps", false, "Skip installing npm dependencies after cloning")
	return cmd
}
