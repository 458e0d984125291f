package model

import (
	"gorm.io/gorm"
)

// AutomationType discriminates automation rows sharing the automations table
type AutomationType string

const (
	AutomationTypeCheckAccount   AutomationType = "check_account"
	AutomationTypeGatherAccounts AutomationType = "gather_accounts"
	AutomationTypePushAccount    AutomationType = "push_account"
	AutomationTypeVerifyAccount  AutomationType = "verify_account"
	AutomationTypeChangeSecret   AutomationType = "change_secret"
	AutomationTypeBackupAccount  AutomationType = "backup_account"
)

// Automation is the base record for recurring account jobs
type Automation struct {
	OrgModel
	Name       string         `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Type       AutomationType `gorm:"column:type;type:varchar(16);not null;index" json:"type"`
	IsPeriodic bool           `gorm:"column:is_periodic;not null" json:"is_periodic"`
	// Interval is in hours
	Interval int      `gorm:"column:interval" json:"interval"`
	Crontab  string   `gorm:"column:crontab;type:varchar(128)" json:"crontab"`
	IsActive bool     `gorm:"column:is_active;not null" json:"is_active"`
	Accounts []string `gorm:"column:accounts;type:text;serializer:json" json:"accounts"`
	AssetIDs []string `gorm:"column:asset_ids;type:text;serializer:json" json:"asset_ids"`
}

func (Automation) TableName() string {
	return "automations"
}

// ToAttrJSON returns the attributes handed to the executing task
func (a *Automation) ToAttrJSON() map[string]interface{} {
	accounts := a.Accounts
	if accounts == nil {
		accounts = []string{}
	}
	assets := a.AssetIDs
	if assets == nil {
		assets = []string{}
	}
	return map[string]interface{}{
		"id":          a.ID,
		"org_id":      a.OrgID,
		"name":        a.Name,
		"type":        string(a.Type),
		"is_periodic": a.IsPeriodic,
		"interval":    a.Interval,
		"crontab":     a.Crontab,
		"is_active":   a.IsActive,
		"accounts":    accounts,
		"asset_ids":   assets,
		"comment":     a.Comment,
	}
}

// AccountCheckAutomation periodically checks managed accounts for risks.
// Its type is always check_account.
type AccountCheckAutomation struct {
	Automation
}

func (AccountCheckAutomation) TableName() string {
	return "automations"
}

// NewAccountCheckAutomation returns an active check automation for orgID
func NewAccountCheckAutomation(orgID, name string) *AccountCheckAutomation {
	if orgID == "" {
		orgID = DefaultOrgID
	}
	return &AccountCheckAutomation{
		Automation: Automation{
			OrgModel: OrgModel{OrgID: orgID},
			Name:     name,
			Type:     AutomationTypeCheckAccount,
			IsActive: true,
		},
	}
}

// BeforeSave forces the discriminator on create and update
func (a *AccountCheckAutomation) BeforeSave(tx *gorm.DB) error {
	a.Type = AutomationTypeCheckAccount
	return nil
}

// ToAttrJSON returns the base attributes; check automations add none
func (a *AccountCheckAutomation) ToAttrJSON() map[string]interface{} {
	return a.Automation.ToAttrJSON()
}
