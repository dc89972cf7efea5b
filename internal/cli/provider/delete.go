package provider

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
)

// DeleteCmd returns the provider delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a provider",
		Long: `Delete a provider by ID.

Deletion is rejected when the provider still has food listings;
remove or reassign those listings first.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.ProviderService.DeleteProvider(ctx, id); err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(),
			"Use 'foodwaste listing list' to find the listings still attached"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	return formatter.Message("✓ Provider %d deleted", id)
}
