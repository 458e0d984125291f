package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLitePrefix selects the embedded SQLite driver instead of PostgreSQL
const SQLitePrefix = "sqlite:"

// Config holds database connection configuration
type Config struct {
	// URL is the database connection URL (defaults to DATABASE_URL env var)
	URL string
}

// Connect establishes a database connection.
// If no URL is provided, it reads from DATABASE_URL environment variable.
// URLs starting with "sqlite:" open a local SQLite database with foreign keys
// enforced.
func Connect(cfg Config) (*gorm.DB, error) {
	dbURL := cfg.URL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Default to silent logging unless ACCRISK_LOG_LEVEL=debug is set
	logMode := logger.Silent
	if os.Getenv("ACCRISK_LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	}

	if IsSQLite(dbURL) {
		db, err := gorm.Open(sqlite.Open(SQLiteDSN(dbURL)), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// one writer keeps in-memory databases shared and avoids SQLITE_BUSY
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	db, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		gormConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// IsSQLite reports whether url selects the SQLite driver
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, SQLitePrefix)
}

// SQLiteDSN strips the scheme and turns on foreign key enforcement, which
// SQLite leaves off per connection.
func SQLiteDSN(url string) string {
	dsn := strings.TrimPrefix(url, SQLitePrefix)
	dsn = strings.TrimPrefix(dsn, "//")
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// URL returns the database URL from environment.
// Returns empty string if DATABASE_URL is not set.
func URL() string {
	return os.Getenv("DATABASE_URL")
}
