package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/accrisk/pkg/model"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// MockRisksStore implements store.RisksStore for testing using testify/mock
type MockRisksStore struct {
	mock.Mock
}

var _ store.RisksStore = (*MockRisksStore)(nil)

func (m *MockRisksStore) Create(assetID, username, risk string, confirmed bool) (*model.AccountRisk, error) {
	args := m.Called(assetID, username, risk, confirmed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountRisk), args.Error(1)
}

func (m *MockRisksStore) BulkCreate(records []store.RiskRecord) (int, error) {
	args := m.Called(records)
	return args.Int(0), args.Error(1)
}

func (m *MockRisksStore) Confirm(id string) (*model.AccountRisk, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountRisk), args.Error(1)
}

func (m *MockRisksStore) Get(id string) (*model.AccountRisk, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountRisk), args.Error(1)
}

func (m *MockRisksStore) List(filter store.RiskFilter) ([]model.AccountRisk, error) {
	args := m.Called(filter)
	return args.Get(0).([]model.AccountRisk), args.Error(1)
}

func (m *MockRisksStore) Count(filter store.RiskFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRisksStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRisksStore) DeleteByAsset(assetID string) (int64, error) {
	args := m.Called(assetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRisksStore) GenerateSyntheticData(count, batchSize int) (int, error) {
	args := m.Called(count, batchSize)
	return args.Int(0), args.Error(1)
}

// MockAutomationsStore implements store.AutomationsStore for testing using testify/mock
type MockAutomationsStore struct {
	mock.Mock
}

var _ store.AutomationsStore = (*MockAutomationsStore)(nil)

func (m *MockAutomationsStore) SaveCheckAutomation(a *model.AccountCheckAutomation) error {
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

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

var _ store.HealthStore = (*MockHealthStore)(nil)

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
