package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"sqlite:accrisk.db", "accrisk.db?_pragma=foreign_keys(1)"},
		{"sqlite://tmp/accrisk.db", "tmp/accrisk.db?_pragma=foreign_keys(1)"},
		{"sqlite:file::memory:?cache=shared", "file::memory:?cache=shared&_pragma=foreign_keys(1)"},
		{"sqlite:x.db?_pragma=foreign_keys(0)", "x.db?_pragma=foreign_keys(0)"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, SQLiteDSN(tt.url))
		})
	}
}

func TestIsSQLite(t *testing.T) {
	assert.True(t, IsSQLite("sqlite:file::memory:"))
	assert.False(t, IsSQLite("postgres://localhost/accrisk"))
}

func TestConnectRequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	_, err := Connect(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestConnectSQLite(t *testing.T) {
	gdb, err := Connect(Config{URL: "sqlite:file::memory:"})
	require.NoError(t, err)

	var fk int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}
