// Package receiver implements the receiver CRUD subcommands.
package receiver

import "github.com/spf13/cobra"

// Cmd returns the receiver parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receiver",
		Short: "Manage receivers",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
