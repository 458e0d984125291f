// Package audit writes RFC5424 audit lines for security-relevant account
// risk operations: confirming a risk, purging risks, seeding synthetic data,
// saving check automations and API authentication.
//
// Lines go to stdout. When AUDIT_DATABASE_URL is set, events are also
// inserted into the messages table. ACCRISK_AUDIT_ENABLED=false disables
// both.
//
//	audit.Log(audit.RiskConfirmEvent{UserID: user, RiskID: id, Success: true})
package audit
