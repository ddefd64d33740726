package commands

import (
	"context"

	"logistics/internal/core/domain/services"
)

// CloseRouteCommandHandler handles manual route closure. The closure is a
// route change like any other, so the full assignment validation re-runs
// against the route's current state before the status flips. Closing a
// route and releasing its driver is one transaction: there is no state
// where the route is closed but the driver still held.
type CloseRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	planner    services.RoutePlanner
}

// NewCloseRouteCommandHandler creates a handler for manual route closure.
func NewCloseRouteCommandHandler(uowFactory RouteUoWFactory) CloseRouteCommandHandler {
	return CloseRouteCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(),
	}
}

// Handle processes the route closure command.
// Returns ConflictError when the route is already closed.
func (h *CloseRouteCommandHandler) Handle(ctx context.Context, cmd CloseRouteCommand) error {
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

	routeDriver, err := uow.DriverRepository().Get(ctx, aggregate.DriverID())
	if err != nil {
		return err
	}

	routeVehicle, err := uow.VehicleRepository().Get(ctx, aggregate.VehicleID())
	if err != nil {
		return err
	}

	_, loads, err := loadRouteShipments(ctx, uow, aggregate.ShipmentIDs())
	if err != nil {
		return err
	}

	if err = h.planner.ValidateAssignment(routeDriver, routeVehicle, loads); err != nil {
		return err
	}

	if err = aggregate.Close(); err != nil {
		return err
	}

	routeDriver.Release()

	if err = uow.DriverRepository().Update(ctx, routeDriver); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
