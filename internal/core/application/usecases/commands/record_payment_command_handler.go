package commands

import (
	"context"

	"logistics/internal/core/domain/model/billing"
)

// RecordPaymentCommandHandler handles payment recording. The payment and
// the refreshed paid projection commit atomically, so a stored paid flag
// always reflects the stored payments.
type RecordPaymentCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(uowFactory InvoiceUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	payment, err := billing.NewPayment(
		cmd.PaymentID(), cmd.InvoiceID(), cmd.Amount(), cmd.Method(), cmd.Date(), cmd.Remarks(),
	)
	if err != nil {
		return err
	}

	if err = invoice.RecordPayment(payment); err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
