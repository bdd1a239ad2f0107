package cli

import (
	"github.com/spf13/cobra"

	"github.com/contentkit/modelreport/internal/contentful"
	"github.com/contentkit/modelreport/internal/progress"
)

var renderCmd = &cobra.Command{
	Use:   "render <schema-file>",
	Short: "Render a report from a local schema export",
	Long: `Render a report from a previously exported content-type collection without
touching the network. The file may be a raw API response (with an "items"
envelope) or a bare array of content types.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		ind := progress.New(cfg.Quiet)

		types, err := contentful.LoadFile(args[0])
		if err != nil {
			ind.Fail("Loading schema failed", err)
			return err
		}

		return renderAndWrite(cmd, cfg, types, ind)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("format", "f", "", "Report format: table, json, csv, markdown")
	renderCmd.Flags().StringP("output-dir", "o", "", "Directory for generated reports")
	renderCmd.Flags().Bool("stdout", false, "Print the report instead of writing a file")
	renderCmd.Flags().StringP("space", "s", "", "Space ID for the report header")
	renderCmd.Flags().StringP("environment", "e", "", "Environment ID for the report header")
}
