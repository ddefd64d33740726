package commands

import (
	"context"
	"fmt"

	"logistics/internal/pkg/errs"
)

// DeleteShipmentCommandHandler handles shipment removal. A shipment that
// is linked to an invoice cannot be deleted: the invoice total was derived
// from it and billing history must stay reconstructible. A shipment still
// assigned to an open route cannot be deleted either, since the route
// would keep referencing it. Incidents reported against the shipment are
// removed with it in the same transaction.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment removal.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment deletion command.
// Returns ConflictError when the shipment is linked to an invoice or
// assigned to an open route.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	linked, err := uow.InvoiceRepository().IsShipmentLinked(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if linked {
		return errs.NewConflictErrorWithCause(
			"shipment", cmd.ShipmentID().String(),
			fmt.Errorf("shipment is linked to an invoice and cannot be deleted"),
		)
	}

	openRoutes, err := uow.RouteRepository().GetOpenByShipmentID(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if len(openRoutes) > 0 {
		return errs.NewConflictErrorWithCause(
			"shipment", cmd.ShipmentID().String(),
			fmt.Errorf("shipment is assigned to an open route and cannot be deleted"),
		)
	}

	if err = uow.IncidentRepository().DeleteByShipmentID(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Delete(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
