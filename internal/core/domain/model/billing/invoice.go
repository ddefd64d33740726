// Package billing provides the Invoice aggregate of the logistics system.
// An invoice aggregates linked shipments' estimated amounts into a total
// and tracks payment application against that total. The paid flag is a
// cached projection of "amount due <= 0", never an independent source of
// truth: it is recomputed after every payment insert or removal and after
// every total recomputation.
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

// ErrInvoiceIsNotConstructed is returned when using an improperly
// initialized Invoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice is the aggregate root for billing reconciliation. It owns its
// shipment links and payments; a shipment appears on at most one invoice
// system-wide (the cross-invoice rule is enforced by the repository's
// unique link index, the in-aggregate rule here).
type Invoice struct {
	id         kernel.UUID
	customerID kernel.UUID
	total      decimal.Decimal
	paid       bool
	issuedAt   time.Time
	remarks    string

	shipmentIDs []kernel.UUID
	payments    []*Payment

	guard guard.ConstructorGuard
}

// NewInvoice creates an empty unpaid Invoice for a customer.
func NewInvoice(id, customerID kernel.UUID, issuedAt time.Time, remarks string) (*Invoice, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		validateIssueDate(issuedAt),
	); err != nil {
		return nil, err
	}

	inv := &Invoice{
		id:         id,
		customerID: customerID,
		total:      decimal.Zero,
		issuedAt:   issuedAt,
		remarks:    remarks,
		guard:      guard.NewConstructorGuard(),
	}
	inv.refreshPaid()
	return inv, nil
}

// RestoreInvoice rehydrates an Invoice with its links and payments.
// The paid flag is re-derived rather than trusted, so a stale projection
// in storage corrects itself on the next save.
func RestoreInvoice(
	id, customerID kernel.UUID,
	total decimal.Decimal,
	issuedAt time.Time,
	remarks string,
	shipmentIDs []kernel.UUID,
	payments []*Payment,
) (*Invoice, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		validateIssueDate(issuedAt),
	); err != nil {
		return nil, err
	}

	inv := &Invoice{
		id:          id,
		customerID:  customerID,
		total:       total,
		issuedAt:    issuedAt,
		remarks:     remarks,
		shipmentIDs: make([]kernel.UUID, len(shipmentIDs)),
		payments:    make([]*Payment, len(payments)),
		guard:       guard.NewConstructorGuard(),
	}
	copy(inv.shipmentIDs, shipmentIDs)
	copy(inv.payments, payments)

	for _, p := range payments {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.InvoiceID().IsEqual(id) {
			return nil, errs.NewFatalInconsistencyError(
				fmt.Sprintf("payment %s belongs to invoice %s, not %s", p.ID(), p.InvoiceID(), id),
			)
		}
	}

	inv.refreshPaid()
	return inv, nil
}

// Validate ensures the Invoice was created via its constructor.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return ErrInvoiceIsNotConstructed
	}
	return inv.guard.Validate(ErrInvoiceIsNotConstructed)
}

// ID returns the invoice's unique identifier.
func (inv *Invoice) ID() kernel.UUID {
	return inv.id
}

// CustomerID returns the billed customer's identifier.
func (inv *Invoice) CustomerID() kernel.UUID {
	return inv.customerID
}

// Total returns the tax-inclusive line total, derived from the linked
// shipments' estimated amounts.
func (inv *Invoice) Total() decimal.Decimal {
	return inv.total
}

// IsPaid returns the cached paid projection.
func (inv *Invoice) IsPaid() bool {
	return inv.paid
}

// IssuedAt returns the invoice issue date.
func (inv *Invoice) IssuedAt() time.Time {
	return inv.issuedAt
}

// Remarks returns the free-text remarks.
func (inv *Invoice) Remarks() string {
	return inv.remarks
}

// ShipmentIDs returns a copy of the linked shipment identifiers.
func (inv *Invoice) ShipmentIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(inv.shipmentIDs))
	copy(ids, inv.shipmentIDs)
	return ids
}

// Payments returns the payments applied to the invoice.
func (inv *Invoice) Payments() []*Payment {
	payments := make([]*Payment, len(inv.payments))
	copy(payments, inv.payments)
	return payments
}

// HasPayments reports whether any payment was applied.
func (inv *Invoice) HasPayments() bool {
	return len(inv.payments) > 0
}

// ContainsShipment reports whether the shipment is linked to this invoice.
func (inv *Invoice) ContainsShipment(shipmentID kernel.UUID) bool {
	for _, id := range inv.shipmentIDs {
		if id.IsEqual(shipmentID) {
			return true
		}
	}
	return false
}

// LinkShipment adds a shipment to the invoice. Linking a shipment that is
// already on this invoice is a conflict; the caller must additionally
// verify the shipment is not on any other invoice before linking, and
// recompute the total afterwards via RecomputeTotal.
func (inv *Invoice) LinkShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if inv.ContainsShipment(shipmentID) {
		return errs.NewConflictErrorWithCause("shipment", shipmentID.String(),
			fmt.Errorf("shipment already linked to invoice %s", inv.id))
	}

	inv.shipmentIDs = append(inv.shipmentIDs, shipmentID)
	return nil
}

// UnlinkShipment removes a shipment from the invoice. The caller
// recomputes the total afterwards via RecomputeTotal.
func (inv *Invoice) UnlinkShipment(shipmentID kernel.UUID) error {
	for i, id := range inv.shipmentIDs {
		if id.IsEqual(shipmentID) {
			inv.shipmentIDs = append(inv.shipmentIDs[:i], inv.shipmentIDs[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("shipment", shipmentID.String())
}

// RecomputeTotal re-derives the invoice total as the sum of the linked
// shipments' estimated amounts and refreshes the paid projection.
// The caller supplies one estimate per linked shipment.
func (inv *Invoice) RecomputeTotal(shipmentEstimates []decimal.Decimal) error {
	if len(shipmentEstimates) != len(inv.shipmentIDs) {
		return errs.NewFatalInconsistencyError(fmt.Sprintf(
			"invoice %s: %d estimates supplied for %d linked shipments",
			inv.id, len(shipmentEstimates), len(inv.shipmentIDs),
		))
	}

	total := decimal.Zero
	for _, estimate := range shipmentEstimates {
		total = total.Add(estimate)
	}
	inv.total = total
	inv.refreshPaid()
	return nil
}

// RecordPayment appends a payment and refreshes the paid projection.
// The payment must belong to this invoice.
func (inv *Invoice) RecordPayment(payment *Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	if !payment.InvoiceID().IsEqual(inv.id) {
		return errs.NewValueIsInvalidError("payment belongs to a different invoice")
	}

	inv.payments = append(inv.payments, payment)
	inv.refreshPaid()
	return nil
}

// RemovePayment deletes a payment and refreshes the paid projection,
// which may flip a fully-paid invoice back to unpaid.
func (inv *Invoice) RemovePayment(paymentID kernel.UUID) error {
	for i, p := range inv.payments {
		if p.ID().IsEqual(paymentID) {
			inv.payments = append(inv.payments[:i], inv.payments[i+1:]...)
			inv.refreshPaid()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("payment", paymentID.String())
}

// AmountPaid returns the sum of all applied payments.
func (inv *Invoice) AmountPaid() decimal.Decimal {
	paid := decimal.Zero
	for _, p := range inv.payments {
		paid = paid.Add(p.Amount())
	}
	return paid
}

// AmountDue returns total minus amount paid. A negative value reports an
// overpayment; it is never rejected.
func (inv *Invoice) AmountDue() decimal.Decimal {
	return inv.total.Sub(inv.AmountPaid())
}

// IsFullyPaid reports whether the amount due is zero or negative.
func (inv *Invoice) IsFullyPaid() bool {
	return inv.AmountDue().LessThanOrEqual(decimal.Zero)
}

// refreshPaid recomputes the cached paid projection from the payments.
func (inv *Invoice) refreshPaid() {
	inv.paid = inv.IsFullyPaid()
}

func validateIssueDate(issuedAt time.Time) error {
	if issuedAt.IsZero() {
		return errs.NewValueIsRequiredError("issue date")
	}
	return nil
}
