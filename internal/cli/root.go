// Package cli provides the Cobra-based commands for the modelreport tool:
// report generation from a remote space or a local export, the decoder
// coverage audit, and small utility commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modelreport",
	Short: "Content model inspection reports",
	Long: `modelreport inspects a Contentful space's content model and renders it as a
report: every content type, every field, its resolved type, flags, defaults,
and validation rules decoded into readable clauses.

Supported formats: table (default), json, csv, markdown.`,
	Example: `  # Render the content model of a space as a table report
  modelreport generate --space abc123

  # Markdown report into ./docs
  modelreport generate --space abc123 --format markdown --output-dir ./docs

  # Render a previously exported schema file offline
  modelreport render export.json --format csv

  # Check decoder coverage of the schema
  modelreport audit --space abc123`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default .modelreport.json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress and summary output")
	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to prompts (overwrite without asking)")
}
