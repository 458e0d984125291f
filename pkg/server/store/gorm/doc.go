// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// The stores run against PostgreSQL in production and against SQLite in
// tests; both need gorm.Config.TranslateError so constraint violations
// surface as store sentinels. Use db.Connect, or Migrate for a fresh schema.
package gorm
