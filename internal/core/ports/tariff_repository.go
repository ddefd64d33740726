package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"
)

// TariffRepository defines the persistence contract for pricing tariffs
// and their destinations. Tariffs are immutable once stored, so the
// contract has no update method.
type TariffRepository interface {
	// AddDestination persists a new destination.
	AddDestination(ctx context.Context, destination *tariff.Destination) error

	// GetDestination retrieves a destination by its unique identifier.
	GetDestination(ctx context.Context, id kernel.UUID) (*tariff.Destination, error)

	// Add persists a new tariff. The referenced destination must already
	// exist.
	Add(ctx context.Context, aggregate *tariff.Tariff) error

	// Get retrieves a tariff by its unique identifier, including the
	// destination zone snapshot used for route validation.
	Get(ctx context.Context, id kernel.UUID) (*tariff.Tariff, error)
}
