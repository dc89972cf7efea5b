package listing

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	listingservice "github.com/bsan5566/food-waste/internal/services/listing"
)

// AddCmd returns the listing add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new food listing",
		Long: `Add a new food listing for an existing provider.

The provider type is copied from the provider record unless
--provider-type is given explicitly.

Examples:
  foodwaste listing add --food="Bread Loaves" --quantity=20 \
    --expiry=2026-09-05 --provider=1 --location=Austin \
    --food-type=Vegetarian --meal-type=Breakfast
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("food", "", "Food name (required)")
	if err := cmd.MarkFlagRequired("food"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Int("provider", 0, "Provider ID (required)")
	if err := cmd.MarkFlagRequired("provider"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("expiry", "", "Expiry date, YYYY-MM-DD (required)")
	if err := cmd.MarkFlagRequired("expiry"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("location", "", "City where the food is available (required)")
	if err := cmd.MarkFlagRequired("location"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Int("quantity", 0, "Number of units/servings")
	cmd.Flags().String("provider-type", "", "Override the denormalized provider type")
	cmd.Flags().String("food-type", "", "Food type, e.g. Vegetarian, Non-Vegetarian, Vegan")
	cmd.Flags().String("meal-type", "", "Meal type, e.g. Breakfast, Lunch, Dinner, Snacks")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	foodName, _ := cmd.Flags().GetString("food")
	quantity, _ := cmd.Flags().GetInt("quantity")
	expiry, _ := cmd.Flags().GetString("expiry")
	providerID, _ := cmd.Flags().GetInt("provider")
	providerType, _ := cmd.Flags().GetString("provider-type")
	location, _ := cmd.Flags().GetString("location")
	foodType, _ := cmd.Flags().GetString("food-type")
	mealType, _ := cmd.Flags().GetString("meal-type")
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

	listing, err := cliInstance.App.ListingService.CreateListing(ctx, listingservice.CreateRequest{
		FoodName:     foodName,
		Quantity:     quantity,
		ExpiryDate:   expiry,
		ProviderID:   providerID,
		ProviderType: providerType,
		Location:     location,
		FoodType:     foodType,
		MealType:     mealType,
	})
	if err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(),
			"Use 'foodwaste provider list' to see available providers"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	if quietMode {
		fmt.Printf("%d\n", listing.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(listing)
	}

	fmt.Printf("✓ Listing '%s' added (ID: %d)\n", listing.FoodName, listing.ID)
	fmt.Printf("  Quantity: %d\n", listing.Quantity)
	fmt.Printf("  Expires: %s\n", listing.ExpiryDate)
	fmt.Printf("  Provider: #%d (%s)\n", listing.ProviderID, listing.ProviderType)
	return nil
}
