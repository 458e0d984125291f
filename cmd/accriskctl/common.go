package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
	"github.com/doodlesbykumbi/accrisk/pkg/config"
	"github.com/doodlesbykumbi/accrisk/pkg/db"
	gormstore "github.com/doodlesbykumbi/accrisk/pkg/server/store/gorm"
)

// loadConfig loads and validates the configuration and applies its audit toggle
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	audit.SetEnabled(cfg.AuditEnabled)
	return cfg, nil
}

// connect opens the database named by DATABASE_URL. SQLite databases get
// their schema created on the spot.
func connect() (*gorm.DB, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}
	if db.IsSQLite(db.URL()) {
		if err := gormstore.Migrate(database); err != nil {
			return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
		}
	}
	return database, nil
}

func openRisksStore(cfg *config.Config) (*gormstore.RisksStore, error) {
	database, err := connect()
	if err != nil {
		return nil, err
	}
	return gormstore.NewRisksStore(database, cfg.OrgID, cfg.BulkBatchSize), nil
}

func openAutomationsStore(cfg *config.Config) (*gormstore.AutomationsStore, error) {
	database, err := connect()
	if err != nil {
		return nil, err
	}
	return gormstore.NewAutomationsStore(database, cfg.OrgID), nil
}

// operator names the CLI user in audit events
func operator() string {
	return "accriskctl"
}
