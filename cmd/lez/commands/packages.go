package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List the registered packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Packages(cmd.Context())
		},
	}
}
