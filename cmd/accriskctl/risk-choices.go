package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/risk"
)

// riskChoicesCmd represents the risk choices command
var riskChoicesCmd = &cobra.Command{
	Use:   "choices",
	Short: "List the risk kinds and their labels",
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		if err := printChoices(os.Stdout, output); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	riskCmd.AddCommand(riskChoicesCmd)
	riskChoicesCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func printChoices(w io.Writer, output string) error {
	if output == "json" {
		return json.NewEncoder(w).Encode(risk.Choices())
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tLABEL")
	for _, c := range risk.Choices() {
		fmt.Fprintf(tw, "%s\t%s\n", c.Value, c.Label)
	}
	return tw.Flush()
}
