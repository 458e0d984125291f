// Package model defines the GORM models for account risk tracking.
//
// # Core Models
//
//   - AccountRisk: a detected risk for a username on an asset
//   - AccountCheckAutomation: the automation that periodically checks accounts
//   - Automation: base record shared by every account automation type
//   - Asset, Account: the managed hosts and accounts risks refer to
//
// Every model embeds OrgModel, which carries the id, the owning organization
// and the audit timestamps.
//
// # Database Schema
//
//   - account_risk: risks, cascade-deleted with their asset
//   - automations: all account automations, discriminated by type
//   - assets, accounts: minimal mapping of the managed inventory
package model
