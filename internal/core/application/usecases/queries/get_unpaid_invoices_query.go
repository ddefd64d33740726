package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUnpaidInvoicesQueryIsNotConstructed = errors.New(
	"GetUnpaidInvoicesQuery must be created via NewGetUnpaidInvoicesQuery constructor",
)

// GetUnpaidInvoicesQuery retrieves every invoice whose recorded payments
// do not cover its total. Used by billing follow-up.
type GetUnpaidInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnpaidInvoicesQuery creates a query for unpaid invoices.
// This is a parameterless query.
func NewGetUnpaidInvoicesQuery() GetUnpaidInvoicesQuery {
	return GetUnpaidInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnpaidInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnpaidInvoicesQueryIsNotConstructed)
}

// GetUnpaidInvoicesQueryResponse represents an unpaid invoice with the
// amount still due. AmountDue is always positive here; settled and
// overpaid invoices are excluded by the query.
type GetUnpaidInvoicesQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	AmountDue  decimal.Decimal
	IssuedAt   time.Time
}
