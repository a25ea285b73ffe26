package commands

import (
	"github.com/spf13/cobra"

	"github.com/lezer-parser/lezer/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [--cont] <command> [args...]",
		Short: "Run a shell command in every package checkout",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			cont, _ := cmd.Flags().GetBool("cont")
			return c.app.Run(cmd.Context(), args, app.RunOptions{Continue: cont})
		},
	}
	// Flags after the command name belong to the command itself.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Bool("cont", false, "Continue with the remaining packages when the command fails")
	return cmd
}
