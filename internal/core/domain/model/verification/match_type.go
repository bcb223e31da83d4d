package verification

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// MatchType classifies how an invoice reference lookup matched in the
// external ledger.
type MatchType int

const (
	// MatchUnknown represents an invalid or undefined match type.
	// This value (0) helps catch uninitialized MatchType values.
	MatchUnknown MatchType = iota

	// MatchExact means the ledger holds the reference verbatim.
	MatchExact

	// MatchFuzzy means the ledger holds a close variant of the reference.
	MatchFuzzy

	// MatchNone means the ledger holds nothing resembling the reference.
	MatchNone
)

// getMatchTypeStrings returns a map of MatchType values to their wire names.
func getMatchTypeStrings() map[MatchType]string {
	return map[MatchType]string{
		MatchUnknown: "UNKNOWN",
		MatchExact:   "EXACT",
		MatchFuzzy:   "FUZZY",
		MatchNone:    "NONE",
	}
}

// getValidMatchTypeStrings returns a map of only valid MatchType values.
func getValidMatchTypeStrings() map[MatchType]string {
	//nolint:exhaustive // MatchUnknown is intentionally excluded as it's invalid
	return map[MatchType]string{
		MatchExact: "EXACT",
		MatchFuzzy: "FUZZY",
		MatchNone:  "NONE",
	}
}

// ParseMatchType converts a wire name ("EXACT", "FUZZY", "NONE") into a
// MatchType. Returns an error for anything else.
func ParseMatchType(s string) (MatchType, error) {
	for mt, name := range getValidMatchTypeStrings() {
		if name == s {
			return mt, nil
		}
	}
	return MatchUnknown, errs.NewValueIsInvalidErrorWithCause("matchType",
		fmt.Errorf("%q is not a valid match type", s))
}

// Validate checks if the MatchType value is valid.
// Valid match types are: MatchExact, MatchFuzzy, MatchNone.
func (m MatchType) Validate() error {
	if _, ok := getValidMatchTypeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("matchType",
			fmt.Errorf("%d is not a valid match type", m))
	}
	return nil
}

// String returns the wire name of the match type, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer and is safe on any MatchType value.
func (m MatchType) String() string {
	if str, ok := getMatchTypeStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
