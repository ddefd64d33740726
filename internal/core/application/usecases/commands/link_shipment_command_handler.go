package commands

import (
	"context"
	"fmt"

	"logistics/internal/pkg/errs"
)

// LinkShipmentCommandHandler handles billing a shipment on an invoice.
// A shipment can sit on at most one invoice across the whole system, and
// only priced shipments (those carrying an estimate) can be billed. The
// link and the recomputed invoice total commit atomically.
type LinkShipmentCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewLinkShipmentCommandHandler creates a handler for shipment linking.
func NewLinkShipmentCommandHandler(uowFactory InvoiceUoWFactory) LinkShipmentCommandHandler {
	return LinkShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the link command.
// Returns ConflictError when the shipment is already billed anywhere,
// ValidationError when it carries no estimate.
func (h *LinkShipmentCommandHandler) Handle(ctx context.Context, cmd LinkShipmentCommand) error {
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
			fmt.Errorf("shipment is already billed on an invoice"),
		)
	}

	billed, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	if billed.Estimate() == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment",
			fmt.Errorf("shipment %s has no tariff and cannot be billed", cmd.ShipmentID()),
		)
	}

	invoice, err := uow.InvoiceRepository().Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = invoice.LinkShipment(cmd.ShipmentID()); err != nil {
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
