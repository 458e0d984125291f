package automation

import (
	"errors"
	"fmt"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

const (
	// JobNamePrefix starts every periodic check job name
	JobNamePrefix = "check_accounts_task_period_"

	idPrefixLength = 8
)

// ErrMalformedID is returned when an automation id is too short to name a job
var ErrMalformedID = errors.New("automation id is shorter than 8 characters")

// Scheduler derives job registrations for check automations
type Scheduler struct {
	task CheckTask
}

// NewScheduler creates a Scheduler for task
func NewScheduler(task CheckTask) *Scheduler {
	return &Scheduler{task: task}
}

// JobName returns the periodic job name for an automation id
func JobName(automationID string) (string, error) {
	prefix := []rune(automationID)
	if len(prefix) < idPrefixLength {
		return "", fmt.Errorf("%w: %q", ErrMalformedID, automationID)
	}
	return JobNamePrefix + string(prefix[:idPrefixLength]), nil
}

// RegisterTask returns the (name, task, args, kwargs) registration for a
func (s *Scheduler) RegisterTask(a *model.AccountCheckAutomation) (PeriodicTask, error) {
	name, err := JobName(a.ID)
	if err != nil {
		return PeriodicTask{}, err
	}
	return PeriodicTask{
		Name:   name,
		Task:   s.task.Name(),
		Args:   [2]string{a.ID, TriggerTiming.String()},
		Kwargs: map[string]interface{}{},
	}, nil
}

// RegisterAll registers every active, periodic automation with r and
// returns the registrations made. It stops at the first error.
func (s *Scheduler) RegisterAll(automations []model.AccountCheckAutomation, r Registrar) ([]PeriodicTask, error) {
	registered := make([]PeriodicTask, 0, len(automations))
	for i := range automations {
		a := &automations[i]
		if !a.IsActive || !a.IsPeriodic {
			continue
		}
		task, err := s.RegisterTask(a)
		if err != nil {
			return registered, err
		}
		if err := r.Register(task); err != nil {
			return registered, fmt.Errorf("registering %s: %w", task.Name, err)
		}
		registered = append(registered, task)
	}
	return registered, nil
}

// Save forces the check_account type and persists a
func (s *Scheduler) Save(st store.AutomationsStore, a *model.AccountCheckAutomation) error {
	a.Type = model.AutomationTypeCheckAccount
	return st.SaveCheckAutomation(a)
}

// ToAttrJSON returns the attributes passed to the task
func (s *Scheduler) ToAttrJSON(a *model.AccountCheckAutomation) map[string]interface{} {
	return a.ToAttrJSON()
}

// Execute runs the check task for a immediately
func (s *Scheduler) Execute(a *model.AccountCheckAutomation, trigger Trigger) error {
	if err := s.task.Invoke(a.ID, trigger); err != nil {
		return fmt.Errorf("%s for automation %s: %w", s.task.Name(), a.ID, err)
	}
	return nil
}
