package automation

// DefaultCheckTaskName is the registered name of the account check task
const DefaultCheckTaskName = "accounts.tasks.check_account.check_accounts_task"

// CheckTask is the account check task run by the external executor
type CheckTask interface {
	// Name is the identifier the scheduler uses to look the task up
	Name() string
	// Invoke runs a check for the automation
	Invoke(automationID string, trigger Trigger) error
}

// TaskFunc adapts a function to CheckTask
type TaskFunc struct {
	TaskName string
	Fn       func(automationID string, trigger Trigger) error
}

func (t TaskFunc) Name() string {
	return t.TaskName
}

func (t TaskFunc) Invoke(automationID string, trigger Trigger) error {
	if t.Fn == nil {
		return nil
	}
	return t.Fn(automationID, trigger)
}

// PeriodicTask is the registration handed to the external scheduler
type PeriodicTask struct {
	Name   string                 `json:"name"`
	Task   string                 `json:"task"`
	Args   [2]string              `json:"args"`
	Kwargs map[string]interface{} `json:"kwargs"`
}

// Registrar is the external periodic scheduler
type Registrar interface {
	Register(task PeriodicTask) error
}
