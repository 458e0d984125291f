package gorm

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 db,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	require.NoError(t, err)
	return gormDB, mock
}

func TestHealthStore(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("SELECT 1").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewHealthStore(db).CheckConnectivity())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreachable", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("SELECT 1").WillReturnError(errors.New("connection refused"))

		assert.Error(t, NewHealthStore(db).CheckConnectivity())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestConfirmIssuesSingleUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	st := NewRisksStore(db, testOrg, 0)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "account_risk" SET "confirmed"=.+,"updated_at"=.+ WHERE id = .+ AND org_id = .+`).
		WithArgs(true, sqlmock.AnyArg(), "risk-1", testOrg).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := st.Confirm("risk-1")
	assert.ErrorIs(t, err, store.ErrRiskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
