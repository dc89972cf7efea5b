// Package report implements the report catalog subcommands.
package report

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	reportservice "github.com/bsan5566/food-waste/internal/services/report"
)

// Cmd returns the report parent command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Run a report from the fixed catalog",
		Long: `Run one of the canned aggregate reports against the store.

Use "foodwaste report list" to see every report name.

Examples:
  foodwaste report providers-per-city
  foodwaste report provider-contacts --city="New Carol"
  foodwaste report nearing-expiry --days=7
  foodwaste report status-distribution --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runReport,
	}

	cmd.AddCommand(listCmd())

	cmd.Flags().String("city", "", "City filter for provider-contacts")
	cmd.Flags().Int("days", -1, "Day window for nearing-expiry (defaults to config)")
	cmd.Flags().Int("max-quantity", -1, "Quantity bound for low-stock (defaults to config)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every report in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, info := range reportservice.Catalog() {
				fmt.Printf("%-28s %s\n", info.Name, info.Description)
			}
			return nil
		},
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	city, _ := cmd.Flags().GetString("city")
	days, _ := cmd.Flags().GetInt("days")
	threshold, _ := cmd.Flags().GetInt("max-quantity")
	if days < 0 {
		days = cliInstance.App.Config.Reports.ExpiryWindowDays
	}
	if threshold < 0 {
		threshold = cliInstance.App.Config.Reports.LowStockThreshold
	}

	result, err := cliInstance.App.ReportService.Run(ctx, args[0], reportservice.Options{
		City:      city,
		Days:      days,
		Threshold: threshold,
	})
	if err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(),
			"Use 'foodwaste report list' to see available reports"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	return formatter.Table(result)
}
