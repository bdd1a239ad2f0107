package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contentkit/modelreport/internal/contentful"
	"github.com/contentkit/modelreport/internal/progress"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch a space's content model and write a report",
	Long: `Fetch the complete content-type list from the Content Management API and
render it in the selected format into the output directory.

The management token is read from MODELREPORT_CMA_TOKEN or
CONTENTFUL_MANAGEMENT_TOKEN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}
		if err := cfg.RequireRemote(); err != nil {
			return err
		}

		ind := progress.New(cfg.Quiet)

		client := contentful.NewClient(cfg.CMAToken, fetchTimeout(cfg))
		ind.Start(fmt.Sprintf("Fetching content types from %s/%s", cfg.SpaceID, cfg.Environment))
		types, err := client.ContentTypes(cmd.Context(), cfg.SpaceID, cfg.Environment)
		if err != nil {
			ind.Fail("Fetch failed", err)
			return err
		}
		ind.Succeed(fmt.Sprintf("Fetched %d content types", len(types)))

		return renderAndWrite(cmd, cfg, types, ind)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addRemoteFlags(generateCmd)
	generateCmd.Flags().StringP("format", "f", "", "Report format: table, json, csv, markdown")
	generateCmd.Flags().StringP("output-dir", "o", "", "Directory for generated reports")
	generateCmd.Flags().Bool("stdout", false, "Print the report instead of writing a file")
}
