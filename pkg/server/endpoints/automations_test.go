package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/accrisk/pkg/automation"
	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

func TestCheckAutomationTask(t *testing.T) {
	ts := newTestServer(t)

	a := model.NewAccountCheckAutomation("org-test", "nightly")
	a.ID = "abcdef12-3456-7890-abcd-ef1234567890"
	short := model.NewAccountCheckAutomation("org-test", "legacy")
	short.ID = "abc"

	ts.automations.On("GetCheckAutomation", a.ID).Return(a, nil)
	ts.automations.On("GetCheckAutomation", "abc").Return(short, nil)
	ts.automations.On("GetCheckAutomation", "missing").Return(nil, store.ErrAutomationNotFound)

	rec := ts.do(t, httptest.NewRequest("GET", "/automations/check/"+a.ID+"/task", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var task automation.PeriodicTask
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	assert.Equal(t, "check_accounts_task_period_abcdef12", task.Name)
	assert.Equal(t, automation.DefaultCheckTaskName, task.Task)
	assert.Equal(t, [2]string{a.ID, "timing"}, task.Args)
	assert.Empty(t, task.Kwargs)
	assert.Contains(t, rec.Body.String(), `"kwargs":{}`)

	rec = ts.do(t, httptest.NewRequest("GET", "/automations/check/abc/task", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.do(t, httptest.NewRequest("GET", "/automations/check/missing/task", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
