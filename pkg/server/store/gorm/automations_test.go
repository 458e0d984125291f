package gorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

func TestSaveCheckAutomationForcesType(t *testing.T) {
	db := newTestDB(t)
	st := NewAutomationsStore(db, testOrg)

	a := &model.AccountCheckAutomation{Automation: model.Automation{
		Name: "caller typed",
		Type: model.AutomationTypeChangeSecret,
	}}
	require.NoError(t, st.SaveCheckAutomation(a))
	assert.Equal(t, model.AutomationTypeCheckAccount, a.Type)
	assert.Equal(t, testOrg, a.OrgID)
	require.Len(t, a.ID, 36)

	var stored model.Automation
	require.NoError(t, db.First(&stored, "id = ?", a.ID).Error)
	assert.Equal(t, model.AutomationTypeCheckAccount, stored.Type)
}

func TestSaveCheckAutomationHookOnDirectSave(t *testing.T) {
	db := newTestDB(t)

	a := model.NewAccountCheckAutomation(testOrg, "direct")
	a.Type = model.AutomationTypePushAccount
	require.NoError(t, db.Save(a).Error)

	var stored model.Automation
	require.NoError(t, db.First(&stored, "id = ?", a.ID).Error)
	assert.Equal(t, model.AutomationTypeCheckAccount, stored.Type)
}

func TestSaveCheckAutomationUpdate(t *testing.T) {
	db := newTestDB(t)
	st := NewAutomationsStore(db, testOrg)

	a := model.NewAccountCheckAutomation(testOrg, "nightly")
	a.Accounts = []string{"root", "admin"}
	require.NoError(t, st.SaveCheckAutomation(a))

	a.Type = model.AutomationTypeGatherAccounts
	a.IsPeriodic = true
	a.Interval = 12
	require.NoError(t, st.SaveCheckAutomation(a))

	got, err := st.GetCheckAutomation(a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AutomationTypeCheckAccount, got.Type)
	assert.True(t, got.IsPeriodic)
	assert.Equal(t, 12, got.Interval)
	assert.Equal(t, []string{"root", "admin"}, got.Accounts)

	list, err := st.ListCheckAutomations()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetCheckAutomationNotFound(t *testing.T) {
	db := newTestDB(t)
	st := NewAutomationsStore(db, testOrg)

	_, err := st.GetCheckAutomation("missing")
	assert.ErrorIs(t, err, store.ErrAutomationNotFound)
}

func TestListCheckAutomationsSkipsOtherTypes(t *testing.T) {
	db := newTestDB(t)
	st := NewAutomationsStore(db, testOrg)

	require.NoError(t, st.SaveCheckAutomation(model.NewAccountCheckAutomation(testOrg, "check")))
	push := model.Automation{
		OrgModel: model.OrgModel{OrgID: testOrg},
		Name:     "push",
		Type:     model.AutomationTypePushAccount,
	}
	require.NoError(t, db.Create(&push).Error)

	list, err := st.ListCheckAutomations()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "check", list[0].Name)

	_, err = st.GetCheckAutomation(push.ID)
	assert.ErrorIs(t, err, store.ErrAutomationNotFound)
}
