package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnpaidInvoicesQueryHandler retrieves unpaid invoices from the
// database. The amount paid is aggregated from the payments table rather
// than read from the stored projection, so the view stays correct even
// while a projection write is in flight.
type GetUnpaidInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnpaidInvoicesQueryHandler creates a handler for unpaid invoice queries.
// Requires a GORM database connection for query execution.
func NewGetUnpaidInvoicesQueryHandler(db *gorm.DB) GetUnpaidInvoicesQueryHandler {
	return GetUnpaidInvoicesQueryHandler{db: db}
}

// Handle executes the query to retrieve all unpaid invoices.
// Results are sorted by issue date, oldest debt first.
func (h GetUnpaidInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetUnpaidInvoicesQuery,
) ([]GetUnpaidInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]GetUnpaidInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.customer_id,
			i.total,
			COALESCE(SUM(p.amount), 0) AS amount_paid,
			i.issued_at
		FROM invoices i
		LEFT JOIN payments p ON p.invoice_id = i.id
		GROUP BY i.id, i.customer_id, i.total, i.issued_at
		HAVING i.total - COALESCE(SUM(p.amount), 0) > 0
		ORDER BY i.issued_at, i.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnpaidInvoicesQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(&id, &customerID, &resp.Total, &resp.AmountPaid, &resp.IssuedAt)
		if err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = invoiceID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CustomerID = custID

		resp.AmountDue = resp.Total.Sub(resp.AmountPaid)
		invoices = append(invoices, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
