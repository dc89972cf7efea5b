package claim

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	"github.com/bsan5566/food-waste/internal/models"
	claimservice "github.com/bsan5566/food-waste/internal/services/claim"
)

// AddCmd returns the claim add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new claim",
		Long: `Record a receiver's claim against a food listing.

Status defaults to pending; the timestamp defaults to now.

Examples:
  foodwaste claim add --listing=7 --receiver=3
  foodwaste claim add --listing=7 --receiver=3 --status=completed
`,
		RunE: runAdd,
	}

	cmd.Flags().Int("listing", 0, "Food listing ID (required)")
	if err := cmd.MarkFlagRequired("listing"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("receiver", 0, "Receiver ID (required)")
	if err := cmd.MarkFlagRequired("receiver"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("status", models.StatusPending, "Status: pending, completed or cancelled")
	cmd.Flags().String("timestamp", "", "Claim time, YYYY-MM-DD HH:MM:SS (defaults to now)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	foodID, _ := cmd.Flags().GetInt("listing")
	receiverID, _ := cmd.Flags().GetInt("receiver")
	status, _ := cmd.Flags().GetString("status")
	timestamp, _ := cmd.Flags().GetString("timestamp")
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

	claim, err := cliInstance.App.ClaimService.CreateClaim(ctx, claimservice.CreateRequest{
		FoodID:     foodID,
		ReceiverID: receiverID,
		Status:     status,
		Timestamp:  timestamp,
	})
	if err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(),
			"Use 'foodwaste listing list' and 'foodwaste receiver list' to see valid IDs"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	if quietMode {
		fmt.Printf("%d\n", claim.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(claim)
	}

	fmt.Printf("✓ Claim added (ID: %d)\n", claim.ID)
	fmt.Printf("  Listing: #%d\n", claim.FoodID)
	fmt.Printf("  Receiver: #%d\n", claim.ReceiverID)
	fmt.Printf("  Status: %s\n", claim.Status)
	return nil
}
