package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
)

// riskConfirmCmd represents the risk confirm command
var riskConfirmCmd = &cobra.Command{
	Use:   "confirm <id>...",
	Short: "Mark account risks as confirmed",
	Long: `Mark account risks as confirmed. Confirming an already confirmed risk
is not an error.

Example:
  accriskctl risk confirm 0190a0b0-0000-7000-8000-000000000001`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := confirmRisks(args); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to confirm risk: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	riskCmd.AddCommand(riskConfirmCmd)
}

func confirmRisks(ids []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	risksStore, err := openRisksStore(cfg)
	if err != nil {
		return err
	}

	for _, id := range ids {
		row, err := risksStore.Confirm(id)
		event := audit.RiskConfirmEvent{UserID: operator(), RiskID: id, Success: err == nil}
		if err != nil {
			event.ErrorMessage = err.Error()
			audit.Log(event)
			return fmt.Errorf("%s: %w", id, err)
		}
		audit.Log(event)
		fmt.Printf("Confirmed %s (%s)\n", row.ID, row)
	}
	return nil
}
