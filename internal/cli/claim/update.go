package claim

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	claimservice "github.com/bsan5566/food-waste/internal/services/claim"
)

// UpdateCmd returns the claim update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a claim",
		Long: `Update one or more fields of an existing claim.
Only the flags you pass are changed.

Examples:
  foodwaste claim update 12 --status=completed
  foodwaste claim update 12 --receiver=4
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("listing", 0, "New food listing ID")
	cmd.Flags().Int("receiver", 0, "New receiver ID")
	cmd.Flags().String("status", "", "New status: pending, completed or cancelled")
	cmd.Flags().String("timestamp", "", "New claim time, YYYY-MM-DD HH:MM:SS")

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
			fmt.Sprintf("invalid claim ID %q", args[0])); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	req := claimservice.UpdateRequest{ID: id}
	if cmd.Flags().Changed("listing") {
		v, _ := cmd.Flags().GetInt("listing")
		req.FoodID = &v
	}
	if cmd.Flags().Changed("receiver") {
		v, _ := cmd.Flags().GetInt("receiver")
		req.ReceiverID = &v
	}
	if cmd.Flags().Changed("status") {
		v, _ := cmd.Flags().GetString("status")
		req.Status = &v
	}
	if cmd.Flags().Changed("timestamp") {
		v, _ := cmd.Flags().GetString("timestamp")
		req.Timestamp = &v
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

	if err := cliInstance.App.ClaimService.UpdateClaim(ctx, req); err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	return formatter.Message("✓ Claim %d updated", id)
}
