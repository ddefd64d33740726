package route

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	Active ──┬──> Closed
//	         └──> Incident ──> Closed
//
// Closed is final. A route closes either by explicit request or
// automatically once every attached shipment is delivered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	StatusActive
	StatusIncident
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		StatusActive:   "ACTIVE",
		StatusIncident: "INCIDENT",
		StatusClosed:   "CLOSED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:   "ACTIVE",
		StatusIncident: "INCIDENT",
		StatusClosed:   "CLOSED",
	}
}

// StatusFromString parses a persisted route status code.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"route status",
		fmt.Errorf("%q is not a valid route status", s),
	)
}

// Validate checks that the Status is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"route status",
			fmt.Errorf("%d is not a valid route status", s),
		)
	}
	return nil
}

// String returns the persisted code of the status, "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
