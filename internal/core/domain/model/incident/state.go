package incident

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// State represents the handling lifecycle of an incident.
// Resolved and Closed are the settling states: first entry into either
// stamps the resolution timestamp.
type State int

const (
	// StateUnknown represents an invalid or undefined state.
	StateUnknown State = iota

	StateOpen
	StateInProgress
	StateResolved
	StateClosed
	StateCancelled
)

func getStateStrings() map[State]string {
	return map[State]string{
		StateUnknown:    "UNKNOWN",
		StateOpen:       "OUVERT",
		StateInProgress: "EN_COURS",
		StateResolved:   "RESOLU",
		StateClosed:     "FERME",
		StateCancelled:  "ANNULE",
	}
}

func getValidStateStrings() map[State]string {
	//nolint:exhaustive // StateUnknown is intentionally excluded as it's invalid
	return map[State]string{
		StateOpen:       "OUVERT",
		StateInProgress: "EN_COURS",
		StateResolved:   "RESOLU",
		StateClosed:     "FERME",
		StateCancelled:  "ANNULE",
	}
}

// StateFromString parses a persisted incident state code.
func StateFromString(s string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == s {
			return state, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"incident state",
		fmt.Errorf("%q is not a valid incident state", s),
	)
}

// Validate checks that the State is one of the enumerated states.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"incident state",
			fmt.Errorf("%d is not a valid incident state", s),
		)
	}
	return nil
}

// String returns the persisted code of the state, "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsSettling reports whether entering this state settles the incident and
// stamps the resolution timestamp on first entry.
func (s State) IsSettling() bool {
	return s == StateResolved || s == StateClosed
}
