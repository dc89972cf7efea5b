package provider

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	providerservice "github.com/bsan5566/food-waste/internal/services/provider"
)

// AddCmd returns the provider add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new provider",
		Long: `Add a new food provider.

Examples:
  # Human-readable output
  foodwaste provider add --name="Fresh Mart" --type=Grocery --city=Austin

  # Quiet mode for bash capture
  PROVIDER_ID=$(foodwaste provider add --name="Fresh Mart" --type=Grocery --city=Austin --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("name", "", "Provider name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("type", "", "Provider type, e.g. Restaurant or Grocery Store (required)")
	if err := cmd.MarkFlagRequired("type"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("city", "", "Provider city (required)")
	if err := cmd.MarkFlagRequired("city"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("address", "", "Street address")
	cmd.Flags().String("contact", "", "Phone or email contact")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	ptype, _ := cmd.Flags().GetString("type")
	address, _ := cmd.Flags().GetString("address")
	city, _ := cmd.Flags().GetString("city")
	contact, _ := cmd.Flags().GetString("contact")
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

	provider, err := cliInstance.App.ProviderService.CreateProvider(ctx, providerservice.CreateRequest{
		Name:    name,
		Type:    ptype,
		Address: address,
		City:    city,
		Contact: contact,
	})
	if err != nil {
		code, exitCode := cli.Classify(err)
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(exitCode)
	}

	if quietMode {
		fmt.Printf("%d\n", provider.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(provider)
	}

	fmt.Printf("✓ Provider '%s' added (ID: %d)\n", provider.Name, provider.ID)
	fmt.Printf("  Type: %s\n", provider.Type)
	fmt.Printf("  City: %s\n", provider.City)
	return nil
}
