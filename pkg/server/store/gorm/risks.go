package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/accrisk/pkg/metrics"
	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/risk"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// Ensure RisksStore implements store.RisksStore
var _ store.RisksStore = (*RisksStore)(nil)

// RisksStore implements store.RisksStore using GORM
type RisksStore struct {
	db        *gorm.DB
	orgID     string
	batchSize int
}

// NewRisksStore creates a RisksStore scoped to orgID.
// A batchSize below 1 uses store.DefaultBatchSize.
func NewRisksStore(db *gorm.DB, orgID string, batchSize int) *RisksStore {
	if orgID == "" {
		orgID = model.DefaultOrgID
	}
	if batchSize < 1 {
		batchSize = store.DefaultBatchSize
	}
	return &RisksStore{db: db, orgID: orgID, batchSize: batchSize}
}

// Create inserts one risk after checking the risk kind and the asset.
func (s *RisksStore) Create(assetID, username, kind string, confirmed bool) (*model.AccountRisk, error) {
	rec := store.RiskRecord{AssetID: assetID, Username: username, Risk: kind, Confirmed: confirmed}
	if err := store.ValidateRecord(rec); err != nil {
		return nil, err
	}

	row := s.newRow(rec)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		missing, err := missingAssets(tx, s.orgID, []string{assetID})
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", store.ErrForeignKeyViolation, assetID)
		}
		return translateError(tx.Create(row).Error)
	})
	if err != nil {
		return nil, err
	}

	metrics.RisksCreated(row.Risk, 1)
	return row, nil
}

// BulkCreate inserts records s.batchSize at a time. Each batch is validated
// up front and written in one transaction, so a failing batch leaves no rows
// behind while earlier batches stay committed.
func (s *RisksStore) BulkCreate(records []store.RiskRecord) (int, error) {
	created := 0
	for batch, start := 0, 0; start < len(records); batch, start = batch+1, start+s.batchSize {
		end := min(start+s.batchSize, len(records))
		n, err := s.createBatch(batch, start, records[start:end])
		if err != nil {
			metrics.BatchFailed()
			return created, err
		}
		created += n
	}
	return created, nil
}

func (s *RisksStore) createBatch(batch, offset int, records []store.RiskRecord) (int, error) {
	rows := make([]*model.AccountRisk, 0, len(records))
	for i, rec := range records {
		if err := store.ValidateRecord(rec); err != nil {
			return 0, &store.BatchError{Batch: batch, Index: offset + i, Record: rec, Err: err}
		}
		rows = append(rows, s.newRow(rec))
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		missing, err := missingAssets(tx, s.orgID, assetIDs(records))
		if err != nil {
			return &store.BatchError{Batch: batch, Index: -1, Err: err}
		}
		for i, rec := range records {
			if missing[rec.AssetID] {
				return &store.BatchError{
					Batch:  batch,
					Index:  offset + i,
					Record: rec,
					Err:    fmt.Errorf("%w: %s", store.ErrForeignKeyViolation, rec.AssetID),
				}
			}
		}

		if err := tx.Create(&rows).Error; err != nil {
			return &store.BatchError{Batch: batch, Index: -1, Err: translateError(err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	counts := make(map[risk.Kind]int)
	for _, r := range rows {
		counts[r.Risk]++
	}
	for k, n := range counts {
		metrics.RisksCreated(k, n)
	}
	return len(rows), nil
}

// Confirm sets confirmed in a single UPDATE so concurrent confirmations of
// the same row can't lose each other.
func (s *RisksStore) Confirm(id string) (*model.AccountRisk, error) {
	tx := s.db.Model(&model.AccountRisk{}).
		Where("id = ? AND org_id = ?", id, s.orgID).
		Updates(map[string]interface{}{"confirmed": true})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrRiskNotFound
	}

	metrics.RiskConfirmed()
	return s.Get(id)
}

// Get returns a risk by id
func (s *RisksStore) Get(id string) (*model.AccountRisk, error) {
	var row model.AccountRisk
	err := s.db.Where("id = ? AND org_id = ?", id, s.orgID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrRiskNotFound
		}
		return nil, err
	}
	return &row, nil
}

// List returns risks matching filter ordered by id, which follows insertion
// order. Each row's Asset is loaded.
func (s *RisksStore) List(filter store.RiskFilter) ([]model.AccountRisk, error) {
	query := s.filtered(filter).Preload("Asset").Order("id")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	rows := make([]model.AccountRisk, 0)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of risks matching filter
func (s *RisksStore) Count(filter store.RiskFilter) (int64, error) {
	var count int64
	err := s.filtered(filter).Count(&count).Error
	return count, err
}

// Delete purges a single risk
func (s *RisksStore) Delete(id string) error {
	tx := s.db.Where("id = ? AND org_id = ?", id, s.orgID).Delete(&model.AccountRisk{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrRiskNotFound
	}
	return nil
}

// DeleteByAsset purges every risk on an asset
func (s *RisksStore) DeleteByAsset(assetID string) (int64, error) {
	tx := s.db.Where("asset_id = ? AND org_id = ?", assetID, s.orgID).Delete(&model.AccountRisk{})
	return tx.RowsAffected, tx.Error
}

// GenerateSyntheticData seeds count risks from the organization's assets and
// accounts, both taken in id order.
func (s *RisksStore) GenerateSyntheticData(count, batchSize int) (int, error) {
	var assets []string
	if err := s.db.Model(&model.Asset{}).Where("org_id = ?", s.orgID).Order("id").Pluck("id", &assets).Error; err != nil {
		return 0, err
	}
	var usernames []string
	if err := s.db.Model(&model.Account{}).Where("org_id = ?", s.orgID).Order("id").Pluck("username", &usernames).Error; err != nil {
		return 0, err
	}

	records, err := store.SyntheticRecords(assets, usernames, count)
	if err != nil {
		return 0, err
	}

	seeder := NewRisksStore(s.db, s.orgID, batchSize)
	return seeder.BulkCreate(records)
}

func (s *RisksStore) newRow(rec store.RiskRecord) *model.AccountRisk {
	return &model.AccountRisk{
		OrgModel:  model.OrgModel{ID: model.NewID(), OrgID: s.orgID},
		AssetID:   rec.AssetID,
		Username:  rec.Username,
		Risk:      risk.Kind(rec.Risk),
		Confirmed: rec.Confirmed,
	}
}

func (s *RisksStore) filtered(filter store.RiskFilter) *gorm.DB {
	query := s.db.Model(&model.AccountRisk{}).Where("org_id = ?", s.orgID)
	if filter.AssetID != "" {
		query = query.Where("asset_id = ?", filter.AssetID)
	}
	if filter.Username != "" {
		query = query.Where("username = ?", filter.Username)
	}
	if filter.Risk != "" {
		query = query.Where("risk = ?", filter.Risk)
	}
	if filter.Confirmed != nil {
		query = query.Where("confirmed = ?", *filter.Confirmed)
	}
	return query
}

// missingAssets returns the ids in ids that have no row in assets for orgID
func missingAssets(tx *gorm.DB, orgID string, ids []string) (map[string]bool, error) {
	var found []string
	if err := tx.Model(&model.Asset{}).Where("id IN ? AND org_id = ?", ids, orgID).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	missing := make(map[string]bool, len(ids))
	for _, id := range ids {
		missing[id] = true
	}
	for _, id := range found {
		delete(missing, id)
	}
	return missing, nil
}

func assetIDs(records []store.RiskRecord) []string {
	seen := make(map[string]bool, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if !seen[r.AssetID] {
			seen[r.AssetID] = true
			ids = append(ids, r.AssetID)
		}
	}
	return ids
}

// translateError maps driver constraint errors onto store sentinels. It needs
// gorm.Config.TranslateError, which db.Connect sets.
func translateError(err error) error {
	if err != nil && errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", store.ErrForeignKeyViolation, err)
	}
	return err
}
