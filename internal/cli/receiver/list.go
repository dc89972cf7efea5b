package receiver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
)

// ListCmd returns the receiver list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all receivers",
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

	receivers, err := cliInstance.App.ReceiverService.GetAllReceivers(ctx)
	if err != nil {
		if fmtErr := formatter.Error("RECEIVER_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if quietMode {
		for _, r := range receivers {
			fmt.Printf("%d\n", r.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"receivers": receivers,
		})
	}

	if len(receivers) == 0 {
		fmt.Println("No receivers found")
		return nil
	}

	fmt.Printf("Found %d receivers:\n\n", len(receivers))
	for _, r := range receivers {
		fmt.Printf("  [%d] %s (%s, %s)", r.ID, r.Name, r.Type, r.City)
		if r.Contact != "" {
			fmt.Printf(" - %s", r.Contact)
		}
		fmt.Println()
	}

	return nil
}
