package commands

import (
	"context"

	"logistics/internal/core/domain/model/billing"
)

// CreateInvoiceCommandHandler handles invoice creation.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice creation command.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
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

	aggregate, err := billing.NewInvoice(
		cmd.InvoiceID(), cmd.CustomerID(), cmd.IssuedAt(), cmd.Remarks(),
	)
	if err != nil {
		return err
	}

	if err = uow.InvoiceRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
