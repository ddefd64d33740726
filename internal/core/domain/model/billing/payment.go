package billing

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when using an improperly
// initialized Payment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is a monetary application against an invoice. Payments are
// owned by their invoice and only exist inside its aggregate.
type Payment struct {
	id        kernel.UUID
	invoiceID kernel.UUID
	amount    decimal.Decimal
	method    Method
	date      time.Time
	remarks   string

	guard guard.ConstructorGuard
}

// NewPayment creates a validated Payment. The amount must be strictly
// positive; overpayment relative to the invoice total is allowed and
// surfaces as a negative amount due.
func NewPayment(
	id, invoiceID kernel.UUID,
	amount decimal.Decimal,
	method Method,
	date time.Time,
	remarks string,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		invoiceID.Validate(),
		validateAmount(amount),
		method.Validate(),
		validatePaymentDate(date),
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:        id,
		invoiceID: invoiceID,
		amount:    amount,
		method:    method,
		date:      date,
		remarks:   remarks,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment rehydrates a Payment from persistence.
// Applies the same validation as NewPayment.
func RestorePayment(
	id, invoiceID kernel.UUID,
	amount decimal.Decimal,
	method Method,
	date time.Time,
	remarks string,
) (*Payment, error) {
	return NewPayment(id, invoiceID, amount, method, date, remarks)
}

// Validate ensures the Payment was created via its constructor.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// InvoiceID returns the identifier of the owning invoice.
func (p *Payment) InvoiceID() kernel.UUID {
	return p.invoiceID
}

// Amount returns the applied amount.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Method returns the means of payment.
func (p *Payment) Method() Method {
	return p.method
}

// Date returns when the payment was made.
func (p *Payment) Date() time.Time {
	return p.date
}

// Remarks returns the free-text remarks.
func (p *Payment) Remarks() string {
	return p.remarks
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("payment amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	return nil
}

func validatePaymentDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("payment date")
	}
	return nil
}
