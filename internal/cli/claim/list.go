package claim

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
)

// ListCmd returns the claim list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all claims",
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

	claims, err := cliInstance.App.ClaimService.GetAllClaims(ctx)
	if err != nil {
		if fmtErr := formatter.Error("CLAIM_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, c := range claims {
			fmt.Printf("%d\n", c.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"claims":  claims,
		})
	}

	if len(claims) == 0 {
		fmt.Println("No claims found")
		return nil
	}

	fmt.Printf("Found %d claims:\n\n", len(claims))
	for _, c := range claims {
		fmt.Printf("  [%d] listing #%d by receiver #%d - %s (%s)\n",
			c.ID, c.FoodID, c.ReceiverID, c.Status, c.Timestamp)
	}

	return nil
}
