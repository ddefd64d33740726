package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// UpdateRouteCommandHandler handles route modifications. Every update
// re-runs the full assignment validation against the resulting state:
// license compatibility, zone homogeneity and capacity.
//
// After a successful update the handler evaluates auto-closure: a route
// whose shipments are all delivered closes and releases its driver within
// the same transaction.
type UpdateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	planner    services.RoutePlanner
}

// NewUpdateRouteCommandHandler creates a handler for route updates.
func NewUpdateRouteCommandHandler(uowFactory RouteUoWFactory) UpdateRouteCommandHandler {
	return UpdateRouteCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(),
	}
}

// Handle processes the route update command.
// A failed check rejects the whole update and leaves the route unchanged.
func (h *UpdateRouteCommandHandler) Handle(ctx context.Context, cmd UpdateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if cmd.Date() != nil {
		if err = aggregate.Reschedule(*cmd.Date()); err != nil {
			return err
		}
	}
	if cmd.VehicleID() != nil {
		if err = aggregate.ChangeVehicle(*cmd.VehicleID()); err != nil {
			return err
		}
	}
	for _, id := range cmd.AttachIDs() {
		if err = aggregate.AttachShipment(id); err != nil {
			return err
		}
	}
	for _, id := range cmd.DetachIDs() {
		if err = aggregate.DetachShipment(id); err != nil {
			return err
		}
	}

	routeDriver, err := uow.DriverRepository().Get(ctx, aggregate.DriverID())
	if err != nil {
		return err
	}

	routeVehicle, err := uow.VehicleRepository().Get(ctx, aggregate.VehicleID())
	if err != nil {
		return err
	}

	shipments, loads, err := loadRouteShipments(ctx, uow, aggregate.ShipmentIDs())
	if err != nil {
		return err
	}

	if err = h.planner.ValidateAssignment(routeDriver, routeVehicle, loads); err != nil {
		return err
	}

	if allDelivered(shipments) {
		if err = aggregate.Close(); err != nil {
			return err
		}
		routeDriver.Release()
		if err = uow.DriverRepository().Update(ctx, routeDriver); err != nil {
			return err
		}
	}

	if err = uow.RouteRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
