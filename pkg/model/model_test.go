package model

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/accrisk/pkg/risk"
)

func TestAccountRiskString(t *testing.T) {
	r := AccountRisk{AssetID: "asset-1", Username: "root", Risk: risk.KindGhost}
	assert.Equal(t, "root@asset-1 - ghost", r.String())

	r.Asset = &Asset{Name: "web-01"}
	assert.Equal(t, "root@web-01 - ghost", r.String())
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "account_risk", AccountRisk{}.TableName())
	assert.Equal(t, "assets", Asset{}.TableName())
	assert.Equal(t, "accounts", Account{}.TableName())
	assert.Equal(t, "automations", Automation{}.TableName())
	assert.Equal(t, "automations", AccountCheckAutomation{}.TableName())
}

func TestOrgModelBeforeCreate(t *testing.T) {
	t.Run("fills id and org", func(t *testing.T) {
		m := &OrgModel{}
		require.NoError(t, m.BeforeCreate(nil))
		assert.Len(t, m.ID, 36)
		assert.Equal(t, DefaultOrgID, m.OrgID)
	})

	t.Run("keeps caller values", func(t *testing.T) {
		m := &OrgModel{ID: "fixed", OrgID: "org-a"}
		require.NoError(t, m.BeforeCreate(nil))
		assert.Equal(t, "fixed", m.ID)
		assert.Equal(t, "org-a", m.OrgID)
	})
}

func TestNewIDIsTimeOrdered(t *testing.T) {
	ids := make([]string, 200)
	for i := range ids {
		ids[i] = NewID()
	}
	assert.True(t, sort.StringsAreSorted(ids))
}

func TestNewAccountCheckAutomation(t *testing.T) {
	a := NewAccountCheckAutomation("", "nightly")
	assert.Equal(t, AutomationTypeCheckAccount, a.Type)
	assert.Equal(t, DefaultOrgID, a.OrgID)
	assert.Equal(t, "nightly", a.Name)
	assert.True(t, a.IsActive)
}

func TestAccountCheckAutomationBeforeSave(t *testing.T) {
	a := NewAccountCheckAutomation("org-a", "nightly")
	a.Type = AutomationTypePushAccount

	require.NoError(t, a.BeforeSave(nil))
	assert.Equal(t, AutomationTypeCheckAccount, a.Type)
}

func TestToAttrJSON(t *testing.T) {
	a := NewAccountCheckAutomation("org-a", "nightly")
	a.ID = "abcdef1234567890"
	a.IsPeriodic = true
	a.Interval = 24
	a.Accounts = []string{"root"}

	attrs := a.ToAttrJSON()
	assert.Equal(t, a.Automation.ToAttrJSON(), attrs)
	assert.Equal(t, "abcdef1234567890", attrs["id"])
	assert.Equal(t, "check_account", attrs["type"])
	assert.Equal(t, 24, attrs["interval"])
	assert.Equal(t, []string{"root"}, attrs["accounts"])
	assert.Equal(t, []string{}, attrs["asset_ids"])
}
