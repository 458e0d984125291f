package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
)

// auditListCmd represents the audit list command
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent audit events",
	Long: `List recent audit events, newest first.

Example:
  AUDIT_DATABASE_URL=postgres://... accriskctl audit list
  AUDIT_DATABASE_URL=postgres://... accriskctl audit list --msgid risk-confirm --limit 50`,
	Run: func(cmd *cobra.Command, args []string) {
		msgID, _ := cmd.Flags().GetString("msgid")
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")

		store, err := audit.NewStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if store == nil {
			fmt.Fprintln(os.Stderr, "AUDIT_DATABASE_URL environment variable is required")
			os.Exit(1)
		}
		defer func() { _ = store.Close() }()

		messages, err := store.Recent(msgID, limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list audit events: %v\n", err)
			os.Exit(1)
		}
		if err := printAuditMessages(os.Stdout, messages, output); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	auditCmd.AddCommand(auditListCmd)
	auditListCmd.Flags().String("msgid", "", "Only events of this type (risk-confirm, risk-delete, risk-seed, automation, authn)")
	auditListCmd.Flags().Int("limit", 20, "Maximum number of events")
	auditListCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func printAuditMessages(w io.Writer, messages []audit.Message, output string) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if messages == nil {
			messages = []audit.Message{}
		}
		return enc.Encode(messages)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tTYPE\tHOST\tMESSAGE")
	for _, m := range messages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Timestamp.UTC().Format("2006-01-02T15:04:05Z"), m.MsgID, m.Hostname, m.Message)
	}
	return tw.Flush()
}
