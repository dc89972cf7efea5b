// Package claim implements the claim CRUD subcommands.
package claim

import "github.com/spf13/cobra"

// Cmd returns the claim parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Manage claims",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
