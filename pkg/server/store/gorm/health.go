package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore checks database connectivity using GORM
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// CheckConnectivity runs a trivial query
func (s *HealthStore) CheckConnectivity() error {
	return s.db.Exec("SELECT 1").Error
}
