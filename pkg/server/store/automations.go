package store

import (
	"errors"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
)

// ErrAutomationNotFound is returned when a check automation doesn't exist
var ErrAutomationNotFound = errors.New("automation not found")

// AutomationsStore abstracts check automation storage
type AutomationsStore interface {
	// SaveCheckAutomation creates or updates an automation. The type is
	// forced to check_account before the row is written.
	SaveCheckAutomation(a *model.AccountCheckAutomation) error

	// GetCheckAutomation returns a check automation by id
	GetCheckAutomation(id string) (*model.AccountCheckAutomation, error)

	// ListCheckAutomations returns every check automation, oldest first
	ListCheckAutomations() ([]model.AccountCheckAutomation, error)
}
