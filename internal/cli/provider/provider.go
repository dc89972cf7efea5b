// Package provider implements the provider CRUD subcommands.
package provider

import "github.com/spf13/cobra"

// Cmd returns the provider parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provider",
		Short: "Manage providers",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}
