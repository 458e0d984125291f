package risk

import (
	"errors"
	"fmt"
)

// ErrUnknownRiskKind is returned when a value is not part of the registry
var ErrUnknownRiskKind = errors.New("unknown risk kind")

// Kind is a risk kind identified by its stored value
type Kind string

const (
	KindZombie           Kind = "zombie"
	KindGhost            Kind = "ghost"
	KindLongTimePassword Kind = "long_time_password"
	KindWeakPassword     Kind = "weak_password"
	KindPasswordError    Kind = "password_error"
	KindPasswordExpired  Kind = "password_expired"
	KindGroupChanged     Kind = "group_changed"
	KindSudoChanged      Kind = "sudo_changed"
	KindAccountDeleted   Kind = "account_deleted"
	KindNoAdminAccount   Kind = "no_admin_account"
	KindOther            Kind = "others"
)

// kinds is the declaration order. Values, Kinds and Choices follow it.
var kinds = []Kind{
	KindZombie,
	KindGhost,
	KindLongTimePassword,
	KindWeakPassword,
	KindPasswordError,
	KindPasswordExpired,
	KindGroupChanged,
	KindSudoChanged,
	KindAccountDeleted,
	KindNoAdminAccount,
	KindOther,
}

var labels = map[Kind]string{
	KindZombie:           "Long time no login",
	KindGhost:            "Not managed",
	KindLongTimePassword: "Long time no change",
	KindWeakPassword:     "Weak password",
	KindPasswordError:    "Password error",
	KindPasswordExpired:  "Password expired",
	KindGroupChanged:     "Group change",
	KindSudoChanged:      "Sudo changed",
	KindAccountDeleted:   "Account delete",
	KindNoAdminAccount:   "No admin account",
	KindOther:            "Others",
}

// Choice is a (value, label) pair
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Kinds returns all registered kinds in declaration order
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Values returns the stored value of every registered kind in declaration order
func Values() []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

// Choices returns the (value, label) pairs in declaration order
func Choices() []Choice {
	out := make([]Choice, len(kinds))
	for i, k := range kinds {
		out[i] = Choice{Value: string(k), Label: labels[k]}
	}
	return out
}

// Parse returns the Kind for a stored value
func Parse(value string) (Kind, error) {
	k := Kind(value)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRiskKind, value)
	}
	return k, nil
}

// Label returns the display label for a stored value
func Label(value string) (string, error) {
	k, err := Parse(value)
	if err != nil {
		return "", err
	}
	return labels[k], nil
}

// DisplayLabel returns the label for value, or value itself when it is not
// registered. Rows written before a kind was removed still render.
func DisplayLabel(value string) string {
	if label, ok := labels[Kind(value)]; ok {
		return label
	}
	return value
}

// IsValid reports whether k is part of the registry
func (k Kind) IsValid() bool {
	_, ok := labels[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// Label returns the display label, falling back to the raw value
func (k Kind) Label() string {
	return DisplayLabel(string(k))
}
