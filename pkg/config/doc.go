// Package config provides configuration management for account risk tracking.
//
// Configuration is read from $ACCRISK_CONFIG_PATH/accrisk.yml (default
// /etc/accrisk/accrisk.yml) and overridden by environment variables. The
// source of every attribute (default, file or environment) is tracked.
//
// # Key Configuration Options
//
//   - ACCRISK_ORG_ID: Organization the stores are scoped to
//   - ACCRISK_BULK_BATCH_SIZE: Rows per insert transaction (default 50)
//   - ACCRISK_SEED_COUNT: Synthetic risks to generate (default 1000)
//   - ACCRISK_CHECK_TASK_NAME: Registered name of the account check task
//   - ACCRISK_CHECK_TASK_COMMAND: Program run for manual check executions
//   - ACCRISK_JWT_SECRET: HS256 secret for API tokens
//   - ACCRISK_LIST_LIMIT_MAX: Largest page of risks returned
//   - ACCRISK_AUDIT_ENABLED: Audit logging on/off
//   - DATABASE_URL: Database connection (read by package db)
package config
