package commands

import (
	"context"
	"fmt"

	"logistics/internal/pkg/errs"
)

// DeleteInvoiceCommandHandler handles invoice removal. An invoice that
// still carries payments cannot be deleted; payment history is never
// silently dropped.
type DeleteInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewDeleteInvoiceCommandHandler creates a handler for invoice removal.
func NewDeleteInvoiceCommandHandler(uowFactory InvoiceUoWFactory) DeleteInvoiceCommandHandler {
	return DeleteInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice removal command.
// Returns ConflictError when the invoice still has payments.
func (h *DeleteInvoiceCommandHandler) Handle(ctx context.Context, cmd DeleteInvoiceCommand) error {
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

	if invoice.HasPayments() {
		return errs.NewConflictErrorWithCause(
			"invoice", cmd.InvoiceID().String(),
			fmt.Errorf("invoice has recorded payments and cannot be deleted"),
		)
	}

	if err = uow.InvoiceRepository().Delete(ctx, cmd.InvoiceID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
