// Package risk defines the closed set of account risk kinds.
//
// Every kind has a stable stored value, used as a lookup key in the
// account_risk table, and a display label kept in a separate table so labels
// can change without touching persisted rows.
//
// # Kinds
//
//   - zombie: long time no login
//   - ghost: account exists on the asset but is not managed
//   - long_time_password: password not rotated for a long time
//   - weak_password, password_error, password_expired
//   - group_changed, sudo_changed: privilege drift
//   - account_deleted: managed account removed from the asset
//   - no_admin_account: no usable privileged account
//   - others
//
// Stored values that are no longer part of the registry remain readable;
// use DisplayLabel to render them.
package risk
