package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/report"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// riskReportCmd represents the risk report command
var riskReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize account risks as Markdown or HTML",
	Long: `Summarize the organization's account risks: counts per kind and the
risks still awaiting review.

Example:
  accriskctl risk report > report.md
  accriskctl risk report --html > report.html`,
	Run: func(cmd *cobra.Command, args []string) {
		html, _ := cmd.Flags().GetBool("html")

		if err := writeReport(os.Stdout, html); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	riskCmd.AddCommand(riskReportCmd)
	riskReportCmd.Flags().Bool("html", false, "Render HTML instead of Markdown")
}

// reportPageSize bounds each List call while collecting every risk
const reportPageSize = 1000

func writeReport(w io.Writer, html bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	risksStore, err := openRisksStore(cfg)
	if err != nil {
		return err
	}

	var all []model.AccountRisk
	for offset := 0; ; offset += reportPageSize {
		page, err := risksStore.List(store.RiskFilter{Limit: reportPageSize, Offset: offset})
		if err != nil {
			return err
		}
		all = append(all, page...)
		if len(page) < reportPageSize {
			break
		}
	}

	summary := report.Summarize(cfg.OrgID, all, time.Now())
	if html {
		out, err := summary.HTML()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
	_, err = io.WriteString(w, summary.Markdown())
	return err
}
