package commands

import (
	"context"
)

// UnlinkShipmentCommandHandler handles removing a shipment from an
// invoice. The removed link and the recomputed total commit atomically.
type UnlinkShipmentCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUnlinkShipmentCommandHandler creates a handler for shipment unlinking.
func NewUnlinkShipmentCommandHandler(uowFactory InvoiceUoWFactory) UnlinkShipmentCommandHandler {
	return UnlinkShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unlink command.
// Returns ObjectNotFoundError when the shipment is not on the invoice.
func (h *UnlinkShipmentCommandHandler) Handle(ctx context.Context, cmd UnlinkShipmentCommand) error {
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

	invoice, err := uow.InvoiceRepository().Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = invoice.UnlinkShipment(cmd.ShipmentID()); err != nil {
		return err
	}
	if err = recomputeInvoiceTotal(ctx, uow, invoice); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
