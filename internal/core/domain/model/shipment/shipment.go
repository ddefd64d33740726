package shipment

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment factory method.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment represents a single parcel tracked through delivery.
// It is the aggregate root that owns the shipment status state machine
// and the derived estimated amount.
//
// Shipment follows these invariants:
//   - weight and volume are strictly positive decimals
//   - the estimated amount is nil exactly when no tariff is assigned
//   - when a tariff is assigned, the estimate equals
//     tariff.base + weight*perWeight + volume*perVolume and is recomputed
//     on every mutation of weight, volume or tariff
//   - attribute edits are only allowed while the status permits them
//     (see Status.CanModify)
//
// The status transition to Delivered raises a DeliveredEvent, which the
// route lifecycle consumes to re-evaluate closure of active routes.
type Shipment struct {
	id         kernel.UUID
	weight     decimal.Decimal
	volume     decimal.Decimal
	status     Status
	tariffID   *kernel.UUID
	customerID *kernel.UUID
	estimate   *decimal.Decimal

	events []kernel.DomainEvent
	guard  guard.ConstructorGuard
}

// NewShipment creates a new Shipment in Pending status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - weight, volume: physical dimensions, strictly positive
//   - priceTariff: optional tariff; when non-nil the estimate is computed
//   - customerID: optional owning customer
//
// Returns a validation error if any parameter is invalid.
func NewShipment(
	id kernel.UUID,
	weight, volume decimal.Decimal,
	priceTariff *tariff.Tariff,
	customerID *kernel.UUID,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		validateDimension("weight", weight),
		validateDimension("volume", volume),
		validateOptionalTariff(priceTariff),
		validateOptionalID("customer", customerID),
	); err != nil {
		return nil, err
	}

	s := &Shipment{
		id:         id,
		weight:     weight,
		volume:     volume,
		status:     StatusPending,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}

	if priceTariff != nil {
		tariffID := priceTariff.ID()
		s.tariffID = &tariffID
	}
	s.recompute(priceTariff)

	return s, nil
}

// RestoreShipment rehydrates a Shipment from persistence, including its
// persisted status and estimate.
func RestoreShipment(
	id kernel.UUID,
	weight, volume decimal.Decimal,
	status Status,
	tariffID, customerID *kernel.UUID,
	estimate *decimal.Decimal,
) (*Shipment, error) {
	if err := errors.Join(
		id.Validate(),
		validateDimension("weight", weight),
		validateDimension("volume", volume),
		status.Validate(),
		validateOptionalID("tariff", tariffID),
		validateOptionalID("customer", customerID),
	); err != nil {
		return nil, err
	}

	if (tariffID == nil) != (estimate == nil) {
		return nil, errs.NewFatalInconsistencyError(
			fmt.Sprintf("shipment %s: estimate must be set exactly when a tariff is assigned", id),
		)
	}

	return &Shipment{
		id:         id,
		weight:     weight,
		volume:     volume,
		status:     status,
		tariffID:   tariffID,
		customerID: customerID,
		estimate:   estimate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Shipment was created via its constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Weight returns the shipment weight.
func (s *Shipment) Weight() decimal.Decimal {
	return s.weight
}

// Volume returns the shipment volume.
func (s *Shipment) Volume() decimal.Decimal {
	return s.volume
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// TariffID returns the assigned tariff's ID, nil when unpriced.
func (s *Shipment) TariffID() *kernel.UUID {
	return s.tariffID
}

// CustomerID returns the owning customer's ID, nil when unowned.
func (s *Shipment) CustomerID() *kernel.UUID {
	return s.customerID
}

// Estimate returns the derived estimated amount.
// It is nil exactly when no tariff is assigned.
func (s *Shipment) Estimate() *decimal.Decimal {
	if s.estimate == nil {
		return nil
	}
	v := *s.estimate
	return &v
}

// CanModify reports whether shipment attributes may be edited in the
// current status.
func (s *Shipment) CanModify() bool {
	return s.status.CanModify()
}

// SetDimensions updates weight and volume and recomputes the estimate.
// currentTariff must be the tariff referenced by the shipment (nil when
// none is assigned); passing a different tariff is an inconsistency.
// Fails when either dimension is not strictly positive or when the
// current status locks modifications.
func (s *Shipment) SetDimensions(weight, volume decimal.Decimal, currentTariff *tariff.Tariff) error {
	if err := s.ensureModifiable(); err != nil {
		return err
	}
	if err := errors.Join(
		validateDimension("weight", weight),
		validateDimension("volume", volume),
	); err != nil {
		return err
	}
	if err := s.ensureTariffMatches(currentTariff); err != nil {
		return err
	}

	s.weight = weight
	s.volume = volume
	s.recompute(currentTariff)
	return nil
}

// AssignTariff replaces the shipment's tariff and recomputes the estimate.
// A nil tariff clears both the reference and the estimate.
func (s *Shipment) AssignTariff(priceTariff *tariff.Tariff) error {
	if err := s.ensureModifiable(); err != nil {
		return err
	}
	if err := validateOptionalTariff(priceTariff); err != nil {
		return err
	}

	if priceTariff == nil {
		s.tariffID = nil
	} else {
		tariffID := priceTariff.ID()
		s.tariffID = &tariffID
	}
	s.recompute(priceTariff)
	return nil
}

// ChangeStatus transitions the shipment to next, enforcing the lifecycle
// rules of Status.Transition. Landing on Delivered raises a
// DeliveredEvent for the route lifecycle.
func (s *Shipment) ChangeStatus(next Status) error {
	newStatus, err := s.status.Transition(next)
	if err != nil {
		return err
	}

	s.status = newStatus
	if newStatus == StatusDelivered {
		s.events = append(s.events, DeliveredEvent{ShipmentID: s.id})
	}
	return nil
}

// MarkDeliveryFailed forces the status to DeliveryFailed regardless of the
// current state. Used by incident escalation, where the state change is an
// imposed side effect, not a lifecycle transition.
func (s *Shipment) MarkDeliveryFailed() {
	s.status = StatusDeliveryFailed
}

// Events returns the domain events raised since the last ClearEvents.
func (s *Shipment) Events() []kernel.DomainEvent {
	return s.events
}

// ClearEvents drops all collected domain events.
// Called by handlers after dispatching.
func (s *Shipment) ClearEvents() {
	s.events = nil
}

// recompute re-derives the estimate from the current dimensions and the
// given tariff. Estimate invariant: nil iff no tariff.
func (s *Shipment) recompute(priceTariff *tariff.Tariff) {
	if priceTariff == nil {
		s.estimate = nil
		return
	}
	price := priceTariff.PriceFor(s.weight, s.volume)
	s.estimate = &price
}

func (s *Shipment) ensureModifiable() error {
	if !s.status.CanModify() {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment status",
			fmt.Errorf("shipment in status %s cannot be modified", s.status),
		)
	}
	return nil
}

func (s *Shipment) ensureTariffMatches(currentTariff *tariff.Tariff) error {
	if s.tariffID == nil {
		if currentTariff != nil {
			return errs.NewValueIsInvalidError("tariff does not match shipment's tariff reference")
		}
		return nil
	}
	if currentTariff == nil || !currentTariff.ID().IsEqual(*s.tariffID) {
		return errs.NewValueIsInvalidError("tariff does not match shipment's tariff reference")
	}
	return nil
}

func validateDimension(name string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", value))
	}
	return nil
}

func validateOptionalTariff(priceTariff *tariff.Tariff) error {
	if priceTariff == nil {
		return nil
	}
	return priceTariff.Validate()
}

func validateOptionalID(name string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}
