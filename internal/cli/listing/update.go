package listing

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	listingservice "github.com/bsan5566/food-waste/internal/services/listing"
)

// UpdateCmd returns the listing update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a food listing",
		Long: `Update one or more fields of an existing food listing.
Only the flags you pass are changed. Changing --provider also
refreshes the denormalized provider type.

Examples:
  foodwaste listing update 7 --quantity=12
  foodwaste listing update 7 --expiry=2026-09-10 --meal-type=Dinner
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("food", "", "New food name")
	cmd.Flags().Int("quantity", 0, "New quantity")
	cmd.Flags().String("expiry", "", "New expiry date, YYYY-MM-DD")
	cmd.Flags().Int("provider", 0, "New provider ID")
	cmd.Flags().String("location", "", "New location")
	cmd.Flags().String("food-type", "", "New food type")
	cmd.Flags().String("meal-type", "", "New meal type")

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
			fmt.Sprintf("invalid listing ID %q", args[0])); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	req := listingservice.UpdateRequest{ID: id}
	if cmd.Flags().Changed("food") {
		v, _ := cmd.Flags().GetString("food")
		req.FoodName = &v
	}
	if cmd.Flags().Changed("quantity") {
		v, _ := cmd.Flags().GetInt("quantity")
		req.Quantity = &v
	}
	if cmd.Flags().Changed("expiry") {
		v, _ := cmd.Flags().GetString("expiry")
		req.ExpiryDate = &v
	}
	if cmd.Flags().Changed("provider") {
		v, _ := cmd.Flags().GetInt("provider")
		req.ProviderID = &v
	}
	if cmd.Flags().Changed("location") {
		v, _ := cmd.Flags().GetString("location")
		req.Location = &v
	}
	if cmd.Flags().Changed("food-type") {
		v, _ := cmd.Flags().GetString("food-type")
		req.FoodType = &v
	}
	if cmd.Flags().Changed("meal-type") {
		v, _ := cmd.Flags().GetString("meal-type")
		req.MealType = &v
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

	if err := cliInstance.App.ListingService.UpdateListing(ctx, req); err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	return formatter.Message("✓ Listing %d updated", id)
}
