// Package load implements the bulk CSV load subcommand.
package load

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bsan5566/food-waste/internal/cli"
	"github.com/bsan5566/food-waste/internal/loader"
)

// Cmd returns the load subcommand
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Bulk load the store from CSV sources",
		Long: `Replace the entire store contents with the four CSV source tables.

File paths default to the configured sources; flags override them.
Re-running a load replaces prior contents, it never appends.

Examples:
  foodwaste load
  foodwaste load --providers=providers_data.csv --receivers=receivers_data.csv \
    --listings=food_listings_data.csv --claims=claims_data.csv
`,
		RunE: runLoad,
	}

	cmd.Flags().String("providers", "", "Providers CSV path (defaults to config)")
	cmd.Flags().String("receivers", "", "Receivers CSV path (defaults to config)")
	cmd.Flags().String("listings", "", "Food listings CSV path (defaults to config)")
	cmd.Flags().String("claims", "", "Claims CSV path (defaults to config)")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLoad(cmd *cobra.Command, args []string) error {
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

	src := loader.Sources{
		Providers: cliInstance.App.Config.Sources.Providers,
		Receivers: cliInstance.App.Config.Sources.Receivers,
		Listings:  cliInstance.App.Config.Sources.Listings,
		Claims:    cliInstance.App.Config.Sources.Claims,
	}
	if v, _ := cmd.Flags().GetString("providers"); v != "" {
		src.Providers = v
	}
	if v, _ := cmd.Flags().GetString("receivers"); v != "" {
		src.Receivers = v
	}
	if v, _ := cmd.Flags().GetString("listings"); v != "" {
		src.Listings = v
	}
	if v, _ := cmd.Flags().GetString("claims"); v != "" {
		src.Claims = v
	}

	ds, err := loader.Load(src)
	if err != nil {
		code := "LOAD_ERROR"
		if errors.Is(err, loader.ErrSourceMissing) {
			code = "SOURCE_MISSING"
		}
		if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(),
			"Set source paths in the config file or pass them as flags"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitError)
	}

	if err := cliInstance.App.Repo().ReplaceAll(ctx, ds); err != nil {
		if fmtErr := formatter.Error("LOAD_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitError)
	}

	return formatter.Message("Loaded %d providers, %d receivers, %d listings, %d claims",
		len(ds.Providers), len(ds.Receivers), len(ds.Listings), len(ds.Claims))
}
