package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contentkit/modelreport/internal/render"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List recognized report formats",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Recognized format selectors:")
		for _, sel := range render.Selectors() {
			r := render.ForSelector(sel)
			fmt.Fprintf(out, "  %-10s -> .%s\n", sel, r.Extension())
		}
		fmt.Fprintln(out, "Unrecognized selectors fall back to table.")
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
