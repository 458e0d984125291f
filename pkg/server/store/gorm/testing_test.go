package gorm

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
)

const testOrg = "org-test"

// newTestDB opens a private in-memory SQLite database with foreign keys on
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open("file::memory:?_pragma=foreign_keys(1)"),
		&gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func seedAssets(t *testing.T, db *gorm.DB, orgID string, n int) []model.Asset {
	t.Helper()
	assets := make([]model.Asset, n)
	for i := range assets {
		assets[i] = model.Asset{
			OrgModel: model.OrgModel{ID: model.NewID(), OrgID: orgID},
			Name:     fmt.Sprintf("host-%02d", i),
			Address:  fmt.Sprintf("10.0.0.%d", i+1),
			IsActive: true,
		}
	}
	if n > 0 {
		require.NoError(t, db.Create(&assets).Error)
	}
	return assets
}

func seedAccounts(t *testing.T, db *gorm.DB, orgID string, assets []model.Asset, n int) []model.Account {
	t.Helper()
	accounts := make([]model.Account, n)
	for i := range accounts {
		accounts[i] = model.Account{
			OrgModel: model.OrgModel{ID: model.NewID(), OrgID: orgID},
			Name:     fmt.Sprintf("user%02d", i),
			Username: fmt.Sprintf("user%02d", i),
			AssetID:  assets[i%len(assets)].ID,
			IsActive: true,
		}
	}
	if n > 0 {
		require.NoError(t, db.Create(&accounts).Error)
	}
	return accounts
}
