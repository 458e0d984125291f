package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// Ensure AutomationsStore implements store.AutomationsStore
var _ store.AutomationsStore = (*AutomationsStore)(nil)

// AutomationsStore implements store.AutomationsStore using GORM
type AutomationsStore struct {
	db    *gorm.DB
	orgID string
}

// NewAutomationsStore creates an AutomationsStore scoped to orgID
func NewAutomationsStore(db *gorm.DB, orgID string) *AutomationsStore {
	if orgID == "" {
		orgID = model.DefaultOrgID
	}
	return &AutomationsStore{db: db, orgID: orgID}
}

// SaveCheckAutomation creates or updates a check automation
func (s *AutomationsStore) SaveCheckAutomation(a *model.AccountCheckAutomation) error {
	a.Type = model.AutomationTypeCheckAccount
	if a.OrgID == "" {
		a.OrgID = s.orgID
	}
	return s.db.Save(a).Error
}

// GetCheckAutomation returns a check automation by id
func (s *AutomationsStore) GetCheckAutomation(id string) (*model.AccountCheckAutomation, error) {
	var a model.AccountCheckAutomation
	err := s.db.
		Where("id = ? AND org_id = ? AND type = ?", id, s.orgID, model.AutomationTypeCheckAccount).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrAutomationNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListCheckAutomations returns every check automation in the organization
func (s *AutomationsStore) ListCheckAutomations() ([]model.AccountCheckAutomation, error) {
	list := make([]model.AccountCheckAutomation, 0)
	err := s.db.
		Where("org_id = ? AND type = ?", s.orgID, model.AutomationTypeCheckAccount).
		Order("created_at, id").
		Find(&list).Error
	return list, err
}
