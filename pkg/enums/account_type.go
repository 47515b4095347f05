package enums

import "fmt"

// AccountType distinguishes residential households from commercial generators.
type AccountType string

const (
	AccountTypeResidential AccountType = "residential"
	AccountTypeCommercial  AccountType = "commercial"
)

var validAccountTypes = []AccountType{
	AccountTypeResidential,
	AccountTypeCommercial,
}

// String implements fmt.Stringer.
func (a AccountType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AccountType.
func (a AccountType) IsValid() bool {
	for _, candidate := range validAccountTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAccountType converts raw input into an AccountType.
func ParseAccountType(value string) (AccountType, error) {
	for _, candidate := range validAccountTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account type %q", value)
}
