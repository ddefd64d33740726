package ports

import (
	"context"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates,
// including their shipment links and payments.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	Add(ctx context.Context, aggregate *billing.Invoice) error

	// Update persists changes to an existing invoice aggregate, reconciling
	// stored links and payments with the aggregate's.
	Update(ctx context.Context, aggregate *billing.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	//
	// Payments are loaded with the invoice; a payment row pointing at a
	// missing invoice is surfaced as FatalInconsistencyError, never
	// repaired.
	Get(ctx context.Context, id kernel.UUID) (*billing.Invoice, error)

	// Delete removes an invoice and its shipment links from storage.
	// The caller must ensure the invoice carries no payments.
	Delete(ctx context.Context, id kernel.UUID) error

	// IsShipmentLinked reports whether the shipment is linked to any
	// invoice. Backed by a unique index on the link's shipment id, which
	// also protects concurrent linking.
	IsShipmentLinked(ctx context.Context, shipmentID kernel.UUID) (bool, error)
}
