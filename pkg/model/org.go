package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultOrgID is the organization rows belong to when none is configured
const DefaultOrgID = "00000000-0000-0000-0000-000000000002"

// OrgModel holds the columns shared by every organization-scoped record.
// It is owned by the persistence layer; callers only read it.
type OrgModel struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	OrgID     string    `gorm:"column:org_id;type:varchar(36);not null;index" json:"org_id"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(128)" json:"created_by,omitempty"`
	UpdatedBy string    `gorm:"column:updated_by;type:varchar(128)" json:"updated_by,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
}

// NewID returns a time-ordered identifier. Sorting by id follows insertion order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// BeforeCreate fills in the id and organization
func (m *OrgModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	if m.OrgID == "" {
		m.OrgID = DefaultOrgID
	}
	return nil
}
