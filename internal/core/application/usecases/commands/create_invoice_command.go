package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateInvoiceCommandIsNotConstructed = errors.New(
	"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
)

// CreateInvoiceCommand represents a request to open a new invoice for a
// customer. Invoices start empty; shipments are linked afterwards.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID  kernel.UUID
	customerID kernel.UUID
	issuedAt   time.Time
	remarks    string

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to open an invoice.
func NewCreateInvoiceCommand(
	invoiceID, customerID kernel.UUID,
	issuedAt time.Time,
	remarks string,
) (CreateInvoiceCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		customerID.Validate(),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}
	if issuedAt.IsZero() {
		return CreateInvoiceCommand{}, errs.NewValueIsRequiredError("issuedAt")
	}

	return CreateInvoiceCommand{
		invoiceID:  invoiceID,
		customerID: customerID,
		issuedAt:   issuedAt,
		remarks:    remarks,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// InvoiceID returns the unique identifier for the invoice.
func (c CreateInvoiceCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// CustomerID returns the billed customer's identifier.
func (c CreateInvoiceCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// IssuedAt returns the invoice issue date.
func (c CreateInvoiceCommand) IssuedAt() time.Time {
	return c.issuedAt
}

// Remarks returns the free-form invoice remarks.
func (c CreateInvoiceCommand) Remarks() string {
	return c.remarks
}
