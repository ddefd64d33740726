package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeletePaymentCommandIsNotConstructed = errors.New(
	"DeletePaymentCommand must be created via NewDeletePaymentCommand constructor",
)

// DeletePaymentCommand represents a request to remove a recorded payment
// from an invoice.
type DeletePaymentCommand struct { //nolint:recvcheck //using for validation
	invoiceID kernel.UUID
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePaymentCommand creates a command to remove a payment.
func NewDeletePaymentCommand(invoiceID, paymentID kernel.UUID) (DeletePaymentCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		paymentID.Validate(),
	); err != nil {
		return DeletePaymentCommand{}, err
	}

	return DeletePaymentCommand{
		invoiceID: invoiceID,
		paymentID: paymentID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrDeletePaymentCommandIsNotConstructed)
}

// InvoiceID returns the invoice's identifier.
func (c DeletePaymentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// PaymentID returns the payment's identifier.
func (c DeletePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}
