// Package governance holds the director-governance rules: DIN format
// checks, the Sec 164(2) disqualification tiers and keyword screening of
// board resolution agendas.
package governance

import (
	"fmt"
	"strings"

	dErrors "pratyaksh/pkg/domain-errors"
)

// DINLength is the number of digits in a Director Identification Number.
const DINLength = 8

// ErrInvalidDINMessage is the validation message for a malformed DIN.
const ErrInvalidDINMessage = "Invalid DIN Format. Must be 8 digits."

// DIN is a format-checked Director Identification Number.
type DIN string

// ParseDIN accepts exactly eight ASCII digits. It performs no checksum or
// registry lookup.
func ParseDIN(s string) (DIN, error) {
	if len(s) != DINLength {
		return "", dErrors.New(dErrors.CodeValidation, ErrInvalidDINMessage)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", dErrors.New(dErrors.CodeValidation, ErrInvalidDINMessage)
		}
	}
	return DIN(s), nil
}

func (d DIN) String() string { return string(d) }

// DINStatus is the registry state of a director.
type DINStatus string

const (
	DINApproved     DINStatus = "APPROVED"
	DINDisqualified DINStatus = "DISQUALIFIED"
	DINDeactivated  DINStatus = "DEACTIVATED"
)

// ParseDINStatus maps text to a DINStatus, ignoring case.
func ParseDINStatus(s string) (DINStatus, error) {
	switch DINStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case DINApproved:
		return DINApproved, nil
	case DINDisqualified:
		return DINDisqualified, nil
	case DINDeactivated:
		return DINDeactivated, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("invalid DIN status %q: expected APPROVED, DISQUALIFIED or DEACTIVATED", s))
	}
}

// CanTransitionTo reports whether a director in s may move to next.
// DEACTIVATED is terminal; a no-op transition is never allowed.
func (s DINStatus) CanTransitionTo(next DINStatus) bool {
	if s == DINDeactivated || s == next {
		return false
	}
	switch next {
	case DINApproved, DINDisqualified, DINDeactivated:
		return true
	default:
		return false
	}
}
