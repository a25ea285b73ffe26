package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show uncommitted changes across all checkouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Status(cmd.Context())
		},
	}
}

func (c *CLI) newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit -m <message>",
		Short: "Commit outstanding changes in every dirty checkout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, _ := cmd.Flags().GetString("message")
			return c.app.Commit(cmd.Context(), message)
		},
	}
	cmd.Flags().StringP("message", "m", "", "Commit message to use for every checkout")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
