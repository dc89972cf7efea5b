package receiver

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	receiverservice "github.com/bsan5566/food-waste/internal/services/receiver"
)

// AddCmd returns the receiver add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new receiver",
		Long: `Add a new food receiver (NGO, shelter, charity, individual).

Examples:
  foodwaste receiver add --name="City Shelter" --type=Shelter --city=Austin
  RECEIVER_ID=$(foodwaste receiver add --name="City Shelter" --city=Austin --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "Receiver name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("city", "", "Receiver city (required)")
	if err := cmd.MarkFlagRequired("city"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("type", "", "Receiver type, e.g. NGO or Shelter")
	cmd.Flags().String("contact", "", "Phone or email contact")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	name, _ := cmd.Flags().GetString("name")
	rtype, _ := cmd.Flags().GetString("type")
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

	receiver, err := cliInstance.App.ReceiverService.CreateReceiver(ctx, receiverservice.CreateRequest{
		Name:    name,
		Type:    rtype,
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
		fmt.Printf("%d\n", receiver.ID)
		return nil
	}
	if jsonOutput {
		return formatter.Success(receiver)
	}

	fmt.Printf("✓ Receiver '%s' added (ID: %d)\n", receiver.Name, receiver.ID)
	fmt.Printf("  City: %s\n", receiver.City)
	return nil
}
