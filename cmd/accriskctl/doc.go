// Command accriskctl runs the account risk review API and manages risks and
// check automations from the command line.
//
// # Quick Start
//
//	export DATABASE_URL=postgres://postgres@localhost/accrisk?sslmode=disable
//	export ACCRISK_JWT_SECRET=$(head -c 32 /dev/urandom | base64)
//
//	accriskctl db migrate
//	accriskctl risk seed --count 1000
//	accriskctl token issue alice
//	accriskctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string, or sqlite:<path>
//   - ACCRISK_CONFIG_PATH: Directory holding accrisk.yml
//   - ACCRISK_LOG_LEVEL: "debug" logs SQL statements
//   - AUDIT_DATABASE_URL: Optional database for audit messages
//   - PORT, BIND_ADDRESS: Server listen address
package main
