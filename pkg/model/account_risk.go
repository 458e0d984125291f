package model

import (
	"fmt"

	"github.com/doodlesbykumbi/accrisk/pkg/risk"
)

// AccountRisk is a risk detected for a username on an asset.
//
// Username is not a foreign key: ghost and account_deleted risks refer to
// accounts that are not (or no longer) managed. (asset, username, risk) is
// not unique, the same risk may be recorded more than once.
type AccountRisk struct {
	OrgModel
	AssetID   string    `gorm:"column:asset_id;type:char(36);not null;index" json:"asset_id"`
	Asset     *Asset    `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"-"`
	Username  string    `gorm:"column:username;type:varchar(32);not null" json:"username"`
	Risk      risk.Kind `gorm:"column:risk;type:varchar(128);not null" json:"risk"`
	Confirmed bool      `gorm:"column:confirmed;not null" json:"confirmed"`
}

func (AccountRisk) TableName() string {
	return "account_risk"
}

func (r AccountRisk) String() string {
	asset := r.AssetID
	if r.Asset != nil && r.Asset.Name != "" {
		asset = r.Asset.Name
	}
	return fmt.Sprintf("%s@%s - %s", r.Username, asset, r.Risk)
}
