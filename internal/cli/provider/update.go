package provider

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	providerservice "github.com/bsan5566/food-waste/internal/services/provider"
)

// UpdateCmd returns the provider update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a provider",
		Long: `Update one or more fields of an existing provider.
Only the flags you pass are changed.

Examples:
  foodwaste provider update 3 --contact="555-0100"
  foodwaste provider update 3 --name="Fresh Mart West" --city=Dallas
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New provider name")
	cmd.Flags().String("type", "", "New provider type")
	cmd.Flags().String("address", "", "New street address")
	cmd.Flags().String("city", "", "New city")
	cmd.Flags().String("contact", "", "New contact")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR",
			fmt.Sprintf("invalid provider ID %q", args[0])); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	req := providerservice.UpdateRequest{ID: id}
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		req.Name = &v
	}
	if cmd.Flags().Changed("type") {
		v, _ := cmd.Flags().GetString("type")
		req.Type = &v
	}
	if cmd.Flags().Changed("address") {
		v, _ := cmd.Flags().GetString("address")
		req.Address = &v
	}
	if cmd.Flags().Changed("city") {
		v, _ := cmd.Flags().GetString("city")
		req.City = &v
	}
	if cmd.Flags().Changed("contact") {
		v, _ := cmd.Flags().GetString("contact")
		req.Contact = &v
	}

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

	if err := cliInstance.App.ProviderService.UpdateProvider(ctx, req); err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	return formatter.Message("✓ Provider %d updated", id)
}
