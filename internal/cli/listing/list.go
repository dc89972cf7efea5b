package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	"github.com/bsan5566/food-waste/internal/models"
)

// ListCmd returns the listing list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List food listings, optionally filtered",
		RunE:  runList,
	}

	cmd.Flags().String("city", "", "Only listings available in this city")
	cmd.Flags().String("provider-type", "", "Only listings from this provider type")
	cmd.Flags().String("food-type", "", "Only listings of this food type")
	cmd.Flags().String("meal-type", "", "Only listings of this meal type")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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
	providerType, _ := cmd.Flags().GetString("provider-type")
	foodType, _ := cmd.Flags().GetString("food-type")
	mealType, _ := cmd.Flags().GetString("meal-type")

	listings, err := cliInstance.App.ListingService.FilterListings(ctx, models.ListingFilter{
		City:         city,
		ProviderType: providerType,
		FoodType:     foodType,
		MealType:     mealType,
	})
	if err != nil {
		if fmtErr := formatter.Error("LISTING_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, l := range listings {
			fmt.Printf("%d\n", l.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"listings": listings,
		})
	}

	if len(listings) == 0 {
		fmt.Println("No food listings found")
		return nil
	}

	fmt.Printf("Found %d food listings:\n\n", len(listings))
	for _, l := range listings {
		fmt.Printf("  [%d] %s x%d expires %s (provider #%d, %s)\n",
			l.ID, l.FoodName, l.Quantity, l.ExpiryDate, l.ProviderID, l.Location)
	}

	return nil
}
