package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
)

// ListCmd returns the provider list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all providers",
		RunE:  runList,
	}

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

	providers, err := cliInstance.App.ProviderService.GetAllProviders(ctx)
	if err != nil {
		if fmtErr := formatter.Error("PROVIDER_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, p := range providers {
			fmt.Printf("%d\n", p.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"providers": providers,
		})
	}

	if len(providers) == 0 {
		fmt.Println("No providers found")
		return nil
	}

	fmt.Printf("Found %d providers:\n\n", len(providers))
	for _, p := range providers {
		fmt.Printf("  [%d] %s (%s, %s)", p.ID, p.Name, p.Type, p.City)
		if p.Contact != "" {
			fmt.Printf(" - %s", p.Contact)
		}
		fmt.Println()
	}

	return nil
}
