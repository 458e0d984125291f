package audit

import (
	"fmt"
	"strconv"
)

// RiskConfirmEvent records a reviewer confirming an account risk
type RiskConfirmEvent struct {
	UserID       string
	ClientIP     string
	RiskID       string
	Success      bool
	ErrorMessage string
}

func (e RiskConfirmEvent) MessageID() string { return "risk-confirm" }

func (e RiskConfirmEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s confirmed account risk %s", e.UserID, e.RiskID)
	}
	return withError(fmt.Sprintf("%s tried to confirm account risk %s", e.UserID, e.RiskID), e.ErrorMessage)
}

func (e RiskConfirmEvent) Severity() Severity { return severity(e.Success) }

func (e RiskConfirmEvent) Facility() int { return FacilityAuthPriv }

func (e RiskConfirmEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth:    {"user": e.UserID},
		SDIDSubject: {"risk": e.RiskID},
		SDIDClient:  {"ip": e.ClientIP},
		SDIDAction:  {"operation": "confirm", "result": result(e.Success)},
	}
}

// RiskDeleteEvent records an explicit purge of risks, either one row or
// every row of an asset
type RiskDeleteEvent struct {
	UserID       string
	ClientIP     string
	RiskID       string
	AssetID      string
	Deleted      int64
	Success      bool
	ErrorMessage string
}

func (e RiskDeleteEvent) MessageID() string { return "risk-delete" }

func (e RiskDeleteEvent) target() string {
	if e.RiskID != "" {
		return "account risk " + e.RiskID
	}
	return "account risks of asset " + e.AssetID
}

func (e RiskDeleteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s deleted %s (%d rows)", e.UserID, e.target(), e.Deleted)
	}
	return withError(fmt.Sprintf("%s tried to delete %s", e.UserID, e.target()), e.ErrorMessage)
}

func (e RiskDeleteEvent) Severity() Severity { return severity(e.Success) }

func (e RiskDeleteEvent) Facility() int { return FacilityAuthPriv }

func (e RiskDeleteEvent) StructuredData() map[string]map[string]string {
	subject := map[string]string{"deleted": strconv.FormatInt(e.Deleted, 10)}
	if e.RiskID != "" {
		subject["risk"] = e.RiskID
	}
	if e.AssetID != "" {
		subject["asset"] = e.AssetID
	}
	return map[string]map[string]string{
		SDIDAuth:    {"user": e.UserID},
		SDIDSubject: subject,
		SDIDClient:  {"ip": e.ClientIP},
		SDIDAction:  {"operation": "delete", "result": result(e.Success)},
	}
}

// RiskSeedEvent records a synthetic data generation run
type RiskSeedEvent struct {
	UserID       string
	OrgID        string
	Requested    int
	Inserted     int
	Success      bool
	ErrorMessage string
}

func (e RiskSeedEvent) MessageID() string { return "risk-seed" }

func (e RiskSeedEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s generated %d synthetic account risks in %s", e.UserID, e.Inserted, e.OrgID)
	}
	return withError(fmt.Sprintf("%s generated %d of %d synthetic account risks in %s",
		e.UserID, e.Inserted, e.Requested, e.OrgID), e.ErrorMessage)
}

func (e RiskSeedEvent) Severity() Severity { return severity(e.Success) }

func (e RiskSeedEvent) Facility() int { return FacilityAuth }

func (e RiskSeedEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {"user": e.UserID},
		SDIDSubject: {
			"org":       e.OrgID,
			"requested": strconv.Itoa(e.Requested),
			"inserted":  strconv.Itoa(e.Inserted),
		},
		SDIDAction: {"operation": "seed", "result": result(e.Success)},
	}
}

// AutomationSaveEvent records a check automation being created or updated
type AutomationSaveEvent struct {
	UserID       string
	AutomationID string
	Name         string
	Success      bool
	ErrorMessage string
}

func (e AutomationSaveEvent) MessageID() string { return "automation" }

func (e AutomationSaveEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s saved check automation %s (%s)", e.UserID, e.Name, e.AutomationID)
	}
	return withError(fmt.Sprintf("%s tried to save check automation %s", e.UserID, e.Name), e.ErrorMessage)
}

func (e AutomationSaveEvent) Severity() Severity { return severity(e.Success) }

func (e AutomationSaveEvent) Facility() int { return FacilityAuth }

func (e AutomationSaveEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth:    {"user": e.UserID},
		SDIDSubject: {"automation": e.AutomationID, "name": e.Name},
		SDIDAction:  {"operation": "save", "result": result(e.Success)},
	}
}

// AuthenticateEvent records a bearer token check at the API boundary
type AuthenticateEvent struct {
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string { return "authn" }

func (e AuthenticateEvent) Message() string {
	user := e.UserID
	if user == "" {
		user = "anonymous"
	}
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", user)
	}
	return withError(fmt.Sprintf("%s failed to authenticate", user), e.ErrorMessage)
}

func (e AuthenticateEvent) Severity() Severity { return severity(e.Success) }

func (e AuthenticateEvent) Facility() int { return FacilityAuthPriv }

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth:   {"user": e.UserID, "authenticator": "jwt"},
		SDIDClient: {"ip": e.ClientIP},
		SDIDAction: {"operation": "authenticate", "result": result(e.Success)},
	}
}
