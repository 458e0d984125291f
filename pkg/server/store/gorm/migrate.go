package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
)

// Migrate creates the tables the stores need. Production databases are
// migrated with the SQL files in db/migrations; this is for SQLite and tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Asset{},
		&model.Account{},
		&model.AccountRisk{},
		&model.Automation{},
	)
}
