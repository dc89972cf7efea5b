// Package listing implements the food-listing CRUD subcommands.
package listing

import "github.com/spf13/cobra"

// Cmd returns the listing parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Manage food listings",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
