package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
)

// CreateRouteCommandHandler handles route planning. The full check
// sequence runs before anything is written: license compatibility, driver
// acquisition, zone homogeneity, capacity.
//
// Driver acquisition is a conditional UPDATE inside this transaction, so
// two concurrent creations for the same driver cannot both succeed: the
// loser gets ConflictError and its transaction rolls back.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	planner    services.RoutePlanner
}

// NewCreateRouteCommandHandler creates a handler for route planning.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		planner:    services.NewRoutePlanner(),
	}
}

// Handle processes the route creation command.
// The route, the driver's acquisition and nothing else commit atomically;
// any failed check leaves the driver available.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
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

	routeDriver, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	routeVehicle, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	_, loads, err := loadRouteShipments(ctx, uow, cmd.ShipmentIDs())
	if err != nil {
		return err
	}

	if err = h.planner.ValidateAssignment(routeDriver, routeVehicle, loads); err != nil {
		return err
	}

	if err = uow.DriverRepository().TryAcquire(ctx, cmd.DriverID()); err != nil {
		return err
	}

	aggregate, err := route.NewRoute(
		cmd.RouteID(), cmd.Date(), cmd.VehicleID(), cmd.DriverID(), cmd.ShipmentIDs(),
	)
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
