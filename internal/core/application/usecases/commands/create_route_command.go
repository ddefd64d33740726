package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to plan a new delivery route:
// a date, a driver, a vehicle and an initial set of shipments.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID     kernel.UUID
	date        time.Time
	driverID    kernel.UUID
	vehicleID   kernel.UUID
	shipmentIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to plan a route.
// The shipment set may be empty; shipment ids must be valid and unique.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	date time.Time,
	driverID, vehicleID kernel.UUID,
	shipmentIDs []kernel.UUID,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setDate(date),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
		cmd.setShipmentIDs(shipmentIDs),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the unique identifier for the route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Date returns the planned route date.
func (c CreateRouteCommand) Date() time.Time {
	return c.date
}

// DriverID returns the driver assigned to the route.
func (c CreateRouteCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle assigned to the route.
func (c CreateRouteCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// ShipmentIDs returns the initial shipment set.
func (c CreateRouteCommand) ShipmentIDs() []kernel.UUID {
	result := make([]kernel.UUID, len(c.shipmentIDs))
	copy(result, c.shipmentIDs)
	return result
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}

func (c *CreateRouteCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateRouteCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateRouteCommand) setShipmentIDs(shipmentIDs []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(shipmentIDs))
	for _, id := range shipmentIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewConflictError("shipment", id.String())
		}
		seen[id] = struct{}{}
	}

	c.shipmentIDs = make([]kernel.UUID, len(shipmentIDs))
	copy(c.shipmentIDs, shipmentIDs)
	return nil
}
