package commands

import (
	"context"
)

// CloseDeliveredRoutesCommandHandler evaluates route auto-closure after a
// shipment delivery. It runs in its own transaction, strictly after the
// shipment's delivered status has committed: the delivery is durable even
// if the closure cascade fails and has to be retried through a manual
// route update.
//
// For each open route holding the shipment, the route closes and its
// driver is released when every attached shipment is delivered. Closure
// and release commit together.
type CloseDeliveredRoutesCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCloseDeliveredRoutesCommandHandler creates a handler for the
// delivered-shipment closure cascade.
func NewCloseDeliveredRoutesCommandHandler(uowFactory RouteUoWFactory) CloseDeliveredRoutesCommandHandler {
	return CloseDeliveredRoutesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the closure evaluation command.
func (h *CloseDeliveredRoutesCommandHandler) Handle(ctx context.Context, cmd CloseDeliveredRoutesCommand) error {
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

	routes, err := uow.RouteRepository().GetOpenByShipmentID(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	for _, aggregate := range routes {
		shipments, _, loadErr := loadRouteShipments(ctx, uow, aggregate.ShipmentIDs())
		if loadErr != nil {
			return loadErr
		}
		if !allDelivered(shipments) {
			continue
		}

		if err = aggregate.Close(); err != nil {
			return err
		}

		routeDriver, driverErr := uow.DriverRepository().Get(ctx, aggregate.DriverID())
		if driverErr != nil {
			return driverErr
		}
		routeDriver.Release()

		if err = uow.DriverRepository().Update(ctx, routeDriver); err != nil {
			return err
		}
		if err = uow.RouteRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
