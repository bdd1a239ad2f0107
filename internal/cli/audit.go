package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/contentkit/modelreport/internal/contentful"
	"github.com/contentkit/modelreport/internal/schema"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check decoder coverage of a schema",
	Long: `Run the validation decoder speculatively over the whole schema and report
which rule keys, base types, and rich-text literals occur, plus any rule the
decoder could only render through its raw fallback.

The audit is diagnostic only; unclassified rules do not fail the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return err
		}

		var types []contentful.ContentType
		if schemaFile, _ := cmd.Flags().GetString("file"); schemaFile != "" {
			types, err = contentful.LoadFile(schemaFile)
		} else {
			if err := cfg.RequireRemote(); err != nil {
				return err
			}
			client := contentful.NewClient(cfg.CMAToken, fetchTimeout(cfg))
			types, err = client.ContentTypes(cmd.Context(), cfg.SpaceID, cfg.Environment)
		}
		if err != nil {
			return err
		}

		printAudit(cmd, schema.Audit(types))
		return nil
	},
}

func printAudit(cmd *cobra.Command, audit schema.AuditReport) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Rule keys seen:   %s\n", joinOrNone(audit.RuleKeys))
	fmt.Fprintf(out, "Base types seen:  %s\n", joinOrNone(audit.BaseTypes))
	fmt.Fprintf(out, "Node types seen:  %s\n", joinOrNone(audit.NodeTypes))
	fmt.Fprintf(out, "Marks seen:       %s\n", joinOrNone(audit.Marks))

	if audit.Clean() {
		fmt.Fprintf(out, "%s every validation rule classified\n", color.GreenString("OK:"))
		return
	}

	fmt.Fprintf(out, "%s %d unclassified validation rule(s):\n",
		color.YellowString("Warning:"), len(audit.Unclassified))
	for _, u := range audit.Unclassified {
		fmt.Fprintf(out, "  %s.%s: %s\n", u.ContentTypeID, u.FieldID, u.Raw)
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

func init() {
	rootCmd.AddCommand(auditCmd)
	addRemoteFlags(auditCmd)
	auditCmd.Flags().String("file", "", "Audit a local schema export instead of fetching")
}
