package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to record a payment against
// an invoice. Overpayment is allowed; the amount must be strictly
// positive.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	invoiceID kernel.UUID
	amount    decimal.Decimal
	method    billing.Method
	date      time.Time
	remarks   string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(
	paymentID, invoiceID kernel.UUID,
	amount decimal.Decimal,
	method billing.Method,
	date time.Time,
	remarks string,
) (RecordPaymentCommand, error) {
	if err := errors.Join(
		paymentID.Validate(),
		invoiceID.Validate(),
		method.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}
	if !amount.IsPositive() {
		return RecordPaymentCommand{}, errs.NewValueIsInvalidError("amount")
	}
	if date.IsZero() {
		return RecordPaymentCommand{}, errs.NewValueIsRequiredError("date")
	}

	return RecordPaymentCommand{
		paymentID: paymentID,
		invoiceID: invoiceID,
		amount:    amount,
		method:    method,
		date:      date,
		remarks:   remarks,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the payment.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// InvoiceID returns the paid invoice's identifier.
func (c RecordPaymentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() decimal.Decimal {
	return c.amount
}

// Method returns the payment method.
func (c RecordPaymentCommand) Method() billing.Method {
	return c.method
}

// Date returns the payment date.
func (c RecordPaymentCommand) Date() time.Time {
	return c.date
}

// Remarks returns the free-form payment remarks.
func (c RecordPaymentCommand) Remarks() string {
	return c.remarks
}
