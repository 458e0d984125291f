package automation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
)

type MockAutomationsStore struct {
	mock.Mock
	saved []model.AutomationType
}

func (m *MockAutomationsStore) SaveCheckAutomation(a *model.AccountCheckAutomation) error {
	m.saved = append(m.saved, a.Type)
	args := m.Called(a)
	return args.Error(0)
}

func (m *MockAutomationsStore) GetCheckAutomation(id string) (*model.AccountCheckAutomation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountCheckAutomation), args.Error(1)
}

func (m *MockAutomationsStore) ListCheckAutomations() ([]model.AccountCheckAutomation, error) {
	args := m.Called()
	return args.Get(0).([]model.AccountCheckAutomation), args.Error(1)
}

type recordingRegistrar struct {
	tasks []PeriodicTask
	err   error
}

func (r *recordingRegistrar) Register(task PeriodicTask) error {
	if r.err != nil {
		return r.err
	}
	r.tasks = append(r.tasks, task)
	return nil
}

func checkAutomation(id string) *model.AccountCheckAutomation {
	a := model.NewAccountCheckAutomation("org-a", "nightly")
	a.ID = id
	return a
}

func testScheduler() *Scheduler {
	return NewScheduler(TaskFunc{TaskName: DefaultCheckTaskName})
}

func TestRegisterTask(t *testing.T) {
	task, err := testScheduler().RegisterTask(checkAutomation("abcdef1234567890"))
	require.NoError(t, err)

	assert.Equal(t, "check_accounts_task_period_abcdef12", task.Name)
	assert.Equal(t, DefaultCheckTaskName, task.Task)
	assert.Equal(t, [2]string{"abcdef1234567890", "timing"}, task.Args)
	assert.NotNil(t, task.Kwargs)
	assert.Empty(t, task.Kwargs)
}

func TestRegisterTaskUsesInjectedName(t *testing.T) {
	s := NewScheduler(TaskFunc{TaskName: "custom.check"})
	task, err := s.RegisterTask(checkAutomation("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, "custom.check", task.Task)
}

func TestRegisterTaskMalformedID(t *testing.T) {
	tests := []string{"", "abc", "abcdefg"}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			_, err := testScheduler().RegisterTask(checkAutomation(id))
			assert.ErrorIs(t, err, ErrMalformedID)
		})
	}
}

func TestJobNameExactlyEightCharacters(t *testing.T) {
	name, err := JobName("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, "check_accounts_task_period_abcdefgh", name)
}

func TestJobNameCountsCharacters(t *testing.T) {
	name, err := JobName("自动化检查任务编号-0001")
	require.NoError(t, err)
	assert.Equal(t, "check_accounts_task_period_自动化检查任务编", name)

	_, err = JobName("自动化检查")
	assert.ErrorIs(t, err, ErrMalformedID)
}

func TestSaveForcesDiscriminator(t *testing.T) {
	st := new(MockAutomationsStore)
	a := checkAutomation("abcdef1234567890")
	a.Type = "arbitrary"
	st.On("SaveCheckAutomation", a).Return(nil)

	require.NoError(t, testScheduler().Save(st, a))
	assert.Equal(t, []model.AutomationType{model.AutomationTypeCheckAccount}, st.saved)
	assert.Equal(t, model.AutomationTypeCheckAccount, a.Type)
	st.AssertExpectations(t)
}

func TestSavePropagatesStoreError(t *testing.T) {
	st := new(MockAutomationsStore)
	a := checkAutomation("abcdef1234567890")
	st.On("SaveCheckAutomation", a).Return(errors.New("db down"))

	assert.EqualError(t, testScheduler().Save(st, a), "db down")
}

func TestToAttrJSONAddsNothing(t *testing.T) {
	a := checkAutomation("abcdef1234567890")
	assert.Equal(t, a.Automation.ToAttrJSON(), testScheduler().ToAttrJSON(a))
}

func TestRegisterAll(t *testing.T) {
	periodic := checkAutomation("11111111aaaa")
	periodic.IsPeriodic = true
	inactive := checkAutomation("22222222bbbb")
	inactive.IsPeriodic = true
	inactive.IsActive = false
	manual := checkAutomation("33333333cccc")

	r := &recordingRegistrar{}
	tasks, err := testScheduler().RegisterAll(
		[]model.AccountCheckAutomation{*periodic, *inactive, *manual},
		r,
	)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "check_accounts_task_period_11111111", tasks[0].Name)
	assert.Equal(t, tasks, r.tasks)
}

func TestRegisterAllRegistrarError(t *testing.T) {
	a := checkAutomation("11111111aaaa")
	a.IsPeriodic = true

	_, err := testScheduler().RegisterAll(
		[]model.AccountCheckAutomation{*a},
		&recordingRegistrar{err: errors.New("scheduler unavailable")},
	)
	assert.ErrorContains(t, err, "check_accounts_task_period_11111111")
}

func TestExecute(t *testing.T) {
	var gotID string
	var gotTrigger Trigger
	s := NewScheduler(TaskFunc{
		TaskName: DefaultCheckTaskName,
		Fn: func(id string, trigger Trigger) error {
			gotID, gotTrigger = id, trigger
			return nil
		},
	})

	require.NoError(t, s.Execute(checkAutomation("abcdef1234567890"), TriggerManual))
	assert.Equal(t, "abcdef1234567890", gotID)
	assert.Equal(t, TriggerManual, gotTrigger)
}

func TestExecuteWrapsTaskError(t *testing.T) {
	boom := errors.New("boom")
	s := NewScheduler(TaskFunc{
		TaskName: "check",
		Fn:       func(string, Trigger) error { return boom },
	})

	err := s.Execute(checkAutomation("abcdef1234567890"), TriggerManual)
	assert.ErrorIs(t, err, boom)
}
