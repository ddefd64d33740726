package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// The main pipeline is:
//
//	Pending → Preparing → InTransit → AtSortingHub → OutForDelivery → Delivered
//
// with side branches DeliveryFailed and Returned reachable from any
// in-progress state. Delivered and Returned are terminal. DeliveryFailed
// is recoverable: a failed delivery may be re-attempted (back to
// OutForDelivery) or given up (Returned). No stricter transition table is
// enforced between in-progress states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	StatusPending
	StatusPreparing
	StatusInTransit
	StatusAtSortingHub
	StatusOutForDelivery
	StatusDelivered
	StatusDeliveryFailed
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusPreparing:      "PREPARING",
		StatusInTransit:      "IN_TRANSIT",
		StatusAtSortingHub:   "AT_SORTING_HUB",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusDeliveryFailed: "DELIVERY_FAILED",
		StatusReturned:       "RETURNED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusPreparing:      "PREPARING",
		StatusInTransit:      "IN_TRANSIT",
		StatusAtSortingHub:   "AT_SORTING_HUB",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusDeliveryFailed: "DELIVERY_FAILED",
		StatusReturned:       "RETURNED",
	}
}

// StatusFromString parses a persisted status code.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipment status",
		fmt.Errorf("%q is not a valid shipment status", s),
	)
}

// Validate checks that the Status is one of the enumerated states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%d is not a valid shipment status", s),
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

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusReturned
}

// CanModify reports whether shipment attributes may still be edited in
// this status. The rule allows Pending, InTransit and Delivered while
// locking mid-pipeline statuses; Delivered stays editable so dimension
// corrections can land after the fact.
func (s Status) CanModify() bool {
	return s == StatusPending || s == StatusInTransit || s == StatusDelivered
}

// Transition validates moving to next and returns it.
//
// Rules:
//   - terminal states (Delivered, Returned) allow no transition;
//   - DeliveryFailed may only move to OutForDelivery or Returned;
//   - every other state may move to any valid status.
func (s Status) Transition(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, next),
		)
	}

	if s == StatusDeliveryFailed && next != StatusOutForDelivery && next != StatusReturned {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("%s may only be re-attempted (%s) or returned (%s), not %s",
				s, StatusOutForDelivery, StatusReturned, next),
		)
	}

	return next, nil
}
