// Package automation derives periodic job registrations for account check
// automations.
//
// The scheduler that fires periodic jobs and the task that performs the
// account check are external. This package only produces the registration
// tuple they consume:
//
//	name:   check_accounts_task_period_<first 8 chars of the automation id>
//	task:   the injected CheckTask's name
//	args:   (automation id, "timing")
//	kwargs: {}
package automation
