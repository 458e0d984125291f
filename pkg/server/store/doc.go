// Package store provides storage abstractions for account risk tracking.
//
// Endpoints and commands depend on these interfaces rather than on GORM,
// so they can be tested with mocks. The GORM implementations live in the
// gorm subpackage.
//
// # Available Stores
//
//   - RisksStore: account risk create, bulk insert, confirm, list, purge, seeding
//   - AutomationsStore: check automation persistence
//   - HealthStore: database connectivity
//
// # Usage
//
//	risks := gorm.NewRisksStore(db, orgID, store.DefaultBatchSize)
//	r, err := risks.Create(assetID, "root", "ghost", false)
//	if err != nil {
//	    if errors.Is(err, store.ErrForeignKeyViolation) {
//	        // Asset is gone
//	    }
//	}
package store
