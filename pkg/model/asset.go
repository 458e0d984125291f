package model

// Asset is the managed host an account lives on. Only the columns needed by
// risk tracking are mapped.
type Asset struct {
	OrgModel
	Name     string `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Address  string `gorm:"column:address;type:varchar(767)" json:"address"`
	IsActive bool   `gorm:"column:is_active;not null" json:"is_active"`
}

func (Asset) TableName() string {
	return "assets"
}

// Account is a managed account on an asset
type Account struct {
	OrgModel
	Name       string `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Username   string `gorm:"column:username;type:varchar(128);not null;index" json:"username"`
	AssetID    string `gorm:"column:asset_id;type:char(36);not null;index" json:"asset_id"`
	Asset      *Asset `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"-"`
	Privileged bool   `gorm:"column:privileged;not null" json:"privileged"`
	IsActive   bool   `gorm:"column:is_active;not null" json:"is_active"`
}

func (Account) TableName() string {
	return "accounts"
}
