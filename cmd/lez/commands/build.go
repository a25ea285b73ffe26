package commands

import (
	"github.com/spf13/cobra"

	"github.com/lezer-parser/lezer/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [packages...]",
		Short: "Build packages whose outputs are out of date",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Build(cmd.Context(), args, app.BuildOptions{Force: force})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild even when outputs are newer than sources")
	return cmd
}
