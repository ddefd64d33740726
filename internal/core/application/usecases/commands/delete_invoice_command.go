package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteInvoiceCommandIsNotConstructed = errors.New(
	"DeleteInvoiceCommand must be created via NewDeleteInvoiceCommand constructor",
)

// DeleteInvoiceCommand represents a request to remove an invoice.
type DeleteInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteInvoiceCommand creates a command to remove an invoice.
func NewDeleteInvoiceCommand(invoiceID kernel.UUID) (DeleteInvoiceCommand, error) {
	if err := invoiceID.Validate(); err != nil {
		return DeleteInvoiceCommand{}, err
	}

	return DeleteInvoiceCommand{
		invoiceID: invoiceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the identifier of the invoice to remove.
func (c DeleteInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}
