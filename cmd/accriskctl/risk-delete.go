package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
)

// riskDeleteCmd represents the risk delete command
var riskDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Purge account risks",
	Long: `Purge a single account risk by id, or every risk on an asset with --asset.

Example:
  accriskctl risk delete 0190a0b0-0000-7000-8000-000000000001
  accriskctl risk delete --asset 0190a0a0-0000-7000-8000-000000000001`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assetID, _ := cmd.Flags().GetString("asset")
		if (len(args) == 0) == (assetID == "") {
			fmt.Fprintln(os.Stderr, "error: pass either a risk id or --asset")
			os.Exit(1)
		}

		var err error
		if assetID != "" {
			err = deleteRisksByAsset(assetID)
		} else {
			err = deleteRisk(args[0])
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	riskCmd.AddCommand(riskDeleteCmd)
	riskDeleteCmd.Flags().String("asset", "", "Purge every risk on this asset id")
}

func deleteRisk(id string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	risksStore, err := openRisksStore(cfg)
	if err != nil {
		return err
	}

	err = risksStore.Delete(id)
	event := audit.RiskDeleteEvent{UserID: operator(), RiskID: id, Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
		audit.Log(event)
		return err
	}
	event.Deleted = 1
	audit.Log(event)

	fmt.Printf("Deleted %s\n", id)
	return nil
}

func deleteRisksByAsset(assetID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	risksStore, err := openRisksStore(cfg)
	if err != nil {
		return err
	}

	n, err := risksStore.DeleteByAsset(assetID)
	event := audit.RiskDeleteEvent{UserID: operator(), AssetID: assetID, Deleted: n, Success: err == nil}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %d risks on asset %s\n", n, assetID)
	return nil
}
