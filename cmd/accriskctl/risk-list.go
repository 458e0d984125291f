package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/risk"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// riskListCmd represents the risk list command
var riskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List account risks",
	Long: `List account risks of the configured organization, oldest first.

Example:
  accriskctl risk list
  accriskctl risk list --risk weak_password --confirmed=false
  accriskctl risk list --asset <asset-id> --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		filter, err := riskFilterFromFlags(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		output, _ := cmd.Flags().GetString("output")

		if err := listRisks(os.Stdout, filter, output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list risks: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	riskCmd.AddCommand(riskListCmd)
	riskListCmd.Flags().String("asset", "", "Only risks on this asset id")
	riskListCmd.Flags().String("username", "", "Only risks for this username")
	riskListCmd.Flags().String("risk", "", "Only risks of this kind")
	riskListCmd.Flags().String("confirmed", "", "Only confirmed (true) or unconfirmed (false) risks")
	riskListCmd.Flags().Int("limit", 100, "Maximum number of risks")
	riskListCmd.Flags().Int("offset", 0, "Number of risks to skip")
	riskListCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func riskFilterFromFlags(cmd *cobra.Command) (store.RiskFilter, error) {
	var filter store.RiskFilter
	filter.AssetID, _ = cmd.Flags().GetString("asset")
	filter.Username, _ = cmd.Flags().GetString("username")
	filter.Risk, _ = cmd.Flags().GetString("risk")
	filter.Limit, _ = cmd.Flags().GetInt("limit")
	filter.Offset, _ = cmd.Flags().GetInt("offset")

	if v, _ := cmd.Flags().GetString("confirmed"); v != "" {
		confirmed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("--confirmed must be true or false")
		}
		filter.Confirmed = &confirmed
	}
	return filter, nil
}

func listRisks(w io.Writer, filter store.RiskFilter, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	risksStore, err := openRisksStore(cfg)
	if err != nil {
		return err
	}

	rows, err := risksStore.List(filter)
	if err != nil {
		return err
	}
	return printRisks(w, rows, output)
}

func printRisks(w io.Writer, rows []model.AccountRisk, output string) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tASSET\tUSERNAME\tRISK\tCONFIRMED")
	for _, r := range rows {
		asset := r.AssetID
		if r.Asset != nil && r.Asset.Name != "" {
			asset = r.Asset.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\n", r.ID, asset, r.Username, risk.DisplayLabel(string(r.Risk)), r.Confirmed)
	}
	return tw.Flush()
}
