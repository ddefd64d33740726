package commands

import (
	"context"
)

// DeletePaymentCommandHandler handles payment removal. Removing a payment
// refreshes the paid projection, so an invoice settled by the removed
// payment flips back to unpaid in the same transaction.
type DeletePaymentCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewDeletePaymentCommandHandler creates a handler for payment removal.
func NewDeletePaymentCommandHandler(uowFactory InvoiceUoWFactory) DeletePaymentCommandHandler {
	return DeletePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment removal command.
// Returns ObjectNotFoundError when the payment is not on the invoice.
func (h *DeletePaymentCommandHandler) Handle(ctx context.Context, cmd DeletePaymentCommand) error {
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

	if err = invoice.RemovePayment(cmd.PaymentID()); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
