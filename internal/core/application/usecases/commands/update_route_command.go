package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateRouteCommandIsNotConstructed = errors.New(
		"UpdateRouteCommand must be created via NewUpdateRouteCommand constructor",
	)
	ErrNoRouteChangesRequested = errors.New("update route command carries no changes")
)

// UpdateRouteCommand represents a request to modify an existing route:
// rescheduling, swapping the vehicle, attaching or detaching shipments.
// Driver reassignment is not supported; close the route and plan a new
// one instead.
type UpdateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID   kernel.UUID
	date      *time.Time
	vehicleID *kernel.UUID
	attachIDs []kernel.UUID
	detachIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateRouteCommand creates a command to modify a route.
// At least one change must be requested.
func NewUpdateRouteCommand(
	routeID kernel.UUID,
	date *time.Time,
	vehicleID *kernel.UUID,
	attachIDs, detachIDs []kernel.UUID,
) (UpdateRouteCommand, error) {
	cmd := UpdateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setDate(date),
		cmd.setVehicleID(vehicleID),
		cmd.setShipmentChanges(attachIDs, detachIDs),
	); err != nil {
		return UpdateRouteCommand{}, err
	}

	if date == nil && vehicleID == nil && len(attachIDs) == 0 && len(detachIDs) == 0 {
		return UpdateRouteCommand{}, ErrNoRouteChangesRequested
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to modify.
func (c UpdateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Date returns the new route date, nil when unchanged.
func (c UpdateRouteCommand) Date() *time.Time {
	return c.date
}

// VehicleID returns the replacement vehicle, nil when unchanged.
func (c UpdateRouteCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

// AttachIDs returns the shipments to attach.
func (c UpdateRouteCommand) AttachIDs() []kernel.UUID {
	result := make([]kernel.UUID, len(c.attachIDs))
	copy(result, c.attachIDs)
	return result
}

// DetachIDs returns the shipments to detach.
func (c UpdateRouteCommand) DetachIDs() []kernel.UUID {
	result := make([]kernel.UUID, len(c.detachIDs))
	copy(result, c.detachIDs)
	return result
}

func (c *UpdateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *UpdateRouteCommand) setDate(date *time.Time) error {
	if date != nil && date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}

func (c *UpdateRouteCommand) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return err
		}
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateRouteCommand) setShipmentChanges(attachIDs, detachIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(attachIDs)+len(detachIDs))
	for _, id := range append(append([]kernel.UUID{}, attachIDs...), detachIDs...) {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewConflictError("shipment", id.String())
		}
		seen[id] = struct{}{}
	}

	c.attachIDs = make([]kernel.UUID, len(attachIDs))
	copy(c.attachIDs, attachIDs)
	c.detachIDs = make([]kernel.UUID, len(detachIDs))
	copy(c.detachIDs, detachIDs)
	return nil
}
