// Package db opens the GORM connection used by the stores.
//
// PostgreSQL URLs from DATABASE_URL are the production path. URLs with the
// "sqlite:" prefix open an embedded pure-Go SQLite database, which is handy
// for local runs and demos.
package db
