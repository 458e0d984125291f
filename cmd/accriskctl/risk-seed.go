package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// riskSeedCmd represents the risk seed command
var riskSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate synthetic account risks",
	Long: `Generate synthetic account risks for testing and demos.

Rows cycle through the organization's assets and accounts (ordered by id)
and every risk kind. Each batch is written in its own transaction; when a
batch fails the rows of earlier batches stay.

Example:
  accriskctl risk seed
  accriskctl risk seed --count 5000 --batch-size 200`,
	Run: func(cmd *cobra.Command, args []string) {
		count, _ := cmd.Flags().GetInt("count")
		batchSize, _ := cmd.Flags().GetInt("batch-size")

		if err := seedRisks(count, batchSize); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to seed risks: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	riskCmd.AddCommand(riskSeedCmd)
	riskSeedCmd.Flags().Int("count", 0, "Number of risks (default: seed_count from configuration)")
	riskSeedCmd.Flags().Int("batch-size", 0, "Rows per transaction (default: bulk_batch_size from configuration)")
}

func seedRisks(count, batchSize int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if count <= 0 {
		count = cfg.SeedCount
	}
	if batchSize <= 0 {
		batchSize = cfg.BulkBatchSize
	}

	risksStore, err := openRisksStore(cfg)
	if err != nil {
		return err
	}

	inserted, err := risksStore.GenerateSyntheticData(count, batchSize)
	event := audit.RiskSeedEvent{
		UserID:    operator(),
		OrgID:     cfg.OrgID,
		Requested: count,
		Inserted:  inserted,
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	audit.Log(event)

	if errors.Is(err, store.ErrEmptyPrerequisite) {
		return fmt.Errorf("organization %s has no assets or no accounts to seed from", cfg.OrgID)
	}
	var batchErr *store.BatchError
	if errors.As(err, &batchErr) {
		return fmt.Errorf("inserted %d of %d risks before batch %d failed: %w", inserted, count, batchErr.Batch, err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Inserted %d risks in batches of %d\n", inserted, batchSize)
	return nil
}
