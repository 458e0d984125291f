package store

import (
	"errors"
	"fmt"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
)

var (
	// ErrRiskNotFound is returned when a risk doesn't exist in the store's organization
	ErrRiskNotFound = errors.New("account risk not found")

	// ErrInvalidRiskKind is returned when a risk value is not in the registry
	ErrInvalidRiskKind = errors.New("invalid risk kind")

	// ErrForeignKeyViolation is returned when a record references a missing asset
	ErrForeignKeyViolation = errors.New("asset does not exist")

	// ErrEmptyPrerequisite is returned when synthetic data has no assets or accounts to draw from
	ErrEmptyPrerequisite = errors.New("no assets or accounts available")

	// ErrInvalidUsername is returned for empty usernames or usernames over MaxUsernameLength
	ErrInvalidUsername = errors.New("invalid username")
)

const (
	// DefaultBatchSize is the number of rows inserted per transaction
	DefaultBatchSize = 50

	// DefaultSyntheticCount is the number of rows GenerateSyntheticData creates by default
	DefaultSyntheticCount = 1000

	// MaxUsernameLength matches the account_risk.username column, in characters
	MaxUsernameLength = 32
)

// RiskRecord is the input for a single risk row
type RiskRecord struct {
	AssetID   string `json:"asset_id"`
	Username  string `json:"username"`
	Risk      string `json:"risk"`
	Confirmed bool   `json:"confirmed"`
}

// BatchError reports the batch that failed in a bulk insert.
// Batches before Batch are committed; Batch and later ones are not.
type BatchError struct {
	// Batch is the zero-based batch number
	Batch int
	// Index is the position of the offending record in the input, or -1 when
	// the failure can't be attributed to a single record
	Index  int
	Record RiskRecord
	Err    error
}

func (e *BatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("batch %d: %v", e.Batch, e.Err)
	}
	return fmt.Sprintf(
		"batch %d, record %d (%s@%s %s): %v",
		e.Batch, e.Index, e.Record.Username, e.Record.AssetID, e.Record.Risk, e.Err,
	)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// RiskFilter narrows List and Count. Zero values match everything.
type RiskFilter struct {
	AssetID   string
	Username  string
	Risk      string
	Confirmed *bool
	Limit     int
	Offset    int
}

// RisksStore abstracts account risk storage. Implementations are scoped to
// a single organization.
type RisksStore interface {
	// Create inserts one risk.
	// Returns ErrInvalidRiskKind, ErrInvalidUsername or ErrForeignKeyViolation
	// without writing anything.
	Create(assetID, username, risk string, confirmed bool) (*model.AccountRisk, error)

	// BulkCreate inserts records in batches, each batch in its own transaction.
	// On failure it returns the rows committed so far and a *BatchError.
	BulkCreate(records []RiskRecord) (int, error)

	// Confirm marks a risk as confirmed. Confirming twice is not an error.
	Confirm(id string) (*model.AccountRisk, error)

	// Get returns a risk by id
	Get(id string) (*model.AccountRisk, error)

	// List returns risks matching filter, oldest first
	List(filter RiskFilter) ([]model.AccountRisk, error)

	// Count returns the number of risks matching filter, ignoring Limit and Offset
	Count(filter RiskFilter) (int64, error)

	// Delete purges a single risk
	Delete(id string) error

	// DeleteByAsset purges every risk on an asset and returns how many were removed
	DeleteByAsset(assetID string) (int64, error)

	// GenerateSyntheticData seeds count risks round-robin over the existing
	// assets, accounts and risk kinds, batchSize rows per transaction.
	// Returns ErrEmptyPrerequisite when there are no assets or no accounts.
	GenerateSyntheticData(count, batchSize int) (int, error)
}
