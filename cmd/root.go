// Package cmd wires the foodwaste command tree.
package cmd

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	claimcmd "github.com/bsan5566/food-waste/internal/cli/claim"
	listingcmd "github.com/bsan5566/food-waste/internal/cli/listing"
	loadcmd "github.com/bsan5566/food-waste/internal/cli/load"
	providercmd "github.com/bsan5566/food-waste/internal/cli/provider"
	receivercmd "github.com/bsan5566/food-waste/internal/cli/receiver"
	reportcmd "github.com/bsan5566/food-waste/internal/cli/report"
	"github.com/bsan5566/food-waste/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "foodwaste",
	Short: "Local food wastage dashboard",
	Long: `foodwaste is a terminal dashboard for a local food donation network.

It loads provider, receiver, listing and claim data from CSV files into
a SQLite store, runs a fixed catalog of aggregate reports, and manages
the four tables through CRUD subcommands or an interactive TUI.

Run with no arguments to open the dashboard.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(loadcmd.Cmd())
	rootCmd.AddCommand(reportcmd.Cmd())
	rootCmd.AddCommand(providercmd.Cmd())
	rootCmd.AddCommand(receivercmd.Cmd())
	rootCmd.AddCommand(listingcmd.Cmd())
	rootCmd.AddCommand(claimcmd.Cmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	model := tui.InitialModel(cliInstance.App)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
