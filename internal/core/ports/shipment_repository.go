// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and deleting shipment entities
// with their pricing state.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its status, tariff reference and
	// stored estimate.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByIDs retrieves the shipments for all given identifiers.
	// Returns ObjectNotFoundError when any identifier has no matching row,
	// so callers can rely on a complete result set.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*shipment.Shipment, error)

	// Delete removes a shipment aggregate from storage.
	// Returns ObjectNotFoundError when the shipment does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
