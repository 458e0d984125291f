package store

import (
	"fmt"
	"unicode/utf8"

	"github.com/doodlesbykumbi/accrisk/pkg/risk"
)

// SyntheticRecords builds count records where record i uses
// assetIDs[i % len(assetIDs)], usernames[i % len(usernames)] and
// risk.Values()[i % len(risk.Values())].
func SyntheticRecords(assetIDs, usernames []string, count int) ([]RiskRecord, error) {
	if len(assetIDs) == 0 || len(usernames) == 0 {
		return nil, fmt.Errorf("%w: %d assets, %d accounts", ErrEmptyPrerequisite, len(assetIDs), len(usernames))
	}
	if count <= 0 {
		return []RiskRecord{}, nil
	}

	kinds := risk.Values()
	records := make([]RiskRecord, count)
	for i := range records {
		records[i] = RiskRecord{
			AssetID:  assetIDs[i%len(assetIDs)],
			Username: usernames[i%len(usernames)],
			Risk:     kinds[i%len(kinds)],
		}
	}
	return records, nil
}

// ValidateRecord checks a record against the registry and the username column
func ValidateRecord(r RiskRecord) error {
	if _, err := risk.Parse(r.Risk); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRiskKind, r.Risk)
	}
	if r.Username == "" || utf8.RuneCountInString(r.Username) > MaxUsernameLength {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, r.Username)
	}
	return nil
}
