// Package route provides the Route aggregate of the logistics system.
// A route is a driver+vehicle+shipment-set assignment for a delivery run.
// The aggregate owns the shipment membership and the route status; the
// cross-aggregate assignment checks (licensing, availability, zone
// homogeneity, capacity) live in the RoutePlanner domain service, and
// driver release on closure is coordinated by the application layer in
// the same transaction.
package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrDateIsRequired is returned when creating a route without a date.
	ErrDateIsRequired = errs.NewValueIsRequiredError("date")
	// ErrRouteIsClosed is returned when mutating a route that already closed.
	ErrRouteIsClosed = errs.NewValueIsInvalidError("route is closed")
	// ErrRouteIsNotConstructed is returned when using an improperly initialized Route.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")
)

// Route represents a delivery run: one driver, one vehicle, and the set of
// shipments they carry. A shipment appears at most once in the set.
type Route struct {
	id          kernel.UUID
	date        time.Time
	vehicleID   kernel.UUID
	driverID    kernel.UUID
	status      Status
	shipmentIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewRoute creates a new active Route.
// The shipment set may be empty; duplicates are rejected.
func NewRoute(id kernel.UUID, date time.Time, vehicleID, driverID kernel.UUID, shipmentIDs []kernel.UUID) (*Route, error) {
	if err := errors.Join(
		id.Validate(),
		validateDate(date),
		vehicleID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}

	r := &Route{
		id:        id,
		date:      date,
		vehicleID: vehicleID,
		driverID:  driverID,
		status:    StatusActive,
		guard:     guard.NewConstructorGuard(),
	}

	for _, shipmentID := range shipmentIDs {
		if err := r.AttachShipment(shipmentID); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RestoreRoute rehydrates a Route from persistence with its stored status
// and shipment set.
func RestoreRoute(
	id kernel.UUID,
	date time.Time,
	vehicleID, driverID kernel.UUID,
	status Status,
	shipmentIDs []kernel.UUID,
) (*Route, error) {
	if err := errors.Join(
		id.Validate(),
		validateDate(date),
		vehicleID.Validate(),
		driverID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	r := &Route{
		id:          id,
		date:        date,
		vehicleID:   vehicleID,
		driverID:    driverID,
		status:      status,
		shipmentIDs: make([]kernel.UUID, len(shipmentIDs)),
		guard:       guard.NewConstructorGuard(),
	}
	copy(r.shipmentIDs, shipmentIDs)

	return r, nil
}

// Validate ensures the Route was created via its constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Date returns the scheduled date of the delivery run.
func (r *Route) Date() time.Time {
	return r.date
}

// VehicleID returns the assigned vehicle's identifier.
func (r *Route) VehicleID() kernel.UUID {
	return r.vehicleID
}

// DriverID returns the exclusively held driver's identifier.
func (r *Route) DriverID() kernel.UUID {
	return r.driverID
}

// Status returns the route's lifecycle status.
func (r *Route) Status() Status {
	return r.status
}

// IsActive reports whether the route still holds its driver.
func (r *Route) IsActive() bool {
	return r.status != StatusClosed
}

// ShipmentIDs returns a copy of the attached shipment identifiers.
func (r *Route) ShipmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(r.shipmentIDs))
	copy(ids, r.shipmentIDs)
	return ids
}

// HasShipments reports whether at least one shipment is attached.
func (r *Route) HasShipments() bool {
	return len(r.shipmentIDs) > 0
}

// ContainsShipment reports whether the given shipment is attached.
func (r *Route) ContainsShipment(shipmentID kernel.UUID) bool {
	for _, id := range r.shipmentIDs {
		if id.IsEqual(shipmentID) {
			return true
		}
	}
	return false
}

// AttachShipment adds a shipment to the route's set.
// Fails on a closed route or a duplicate attachment.
func (r *Route) AttachShipment(shipmentID kernel.UUID) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if r.ContainsShipment(shipmentID) {
		return errs.NewConflictErrorWithCause("shipment", shipmentID.String(),
			fmt.Errorf("shipment already attached to route %s", r.id))
	}

	r.shipmentIDs = append(r.shipmentIDs, shipmentID)
	return nil
}

// DetachShipment removes a shipment from the route's set.
func (r *Route) DetachShipment(shipmentID kernel.UUID) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	for i, id := range r.shipmentIDs {
		if id.IsEqual(shipmentID) {
			r.shipmentIDs = append(r.shipmentIDs[:i], r.shipmentIDs[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("shipment", shipmentID.String())
}

// Reschedule changes the route date.
func (r *Route) Reschedule(date time.Time) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if err := validateDate(date); err != nil {
		return err
	}
	r.date = date
	return nil
}

// ChangeVehicle swaps the assigned vehicle. Assignment checks against the
// new vehicle are the caller's responsibility before persisting.
func (r *Route) ChangeVehicle(vehicleID kernel.UUID) error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	r.vehicleID = vehicleID
	return nil
}

// ReportIncident flags the route as disrupted. The route keeps holding
// its driver until it closes.
func (r *Route) ReportIncident() error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	r.status = StatusIncident
	return nil
}

// Close finishes the route. Closing an already-closed route fails.
// The caller releases the driver in the same transaction.
func (r *Route) Close() error {
	if err := r.ensureOpen(); err != nil {
		return err
	}
	r.status = StatusClosed
	return nil
}

func (r *Route) ensureOpen() error {
	if r.status == StatusClosed {
		return ErrRouteIsClosed
	}
	return nil
}

func validateDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	return nil
}
