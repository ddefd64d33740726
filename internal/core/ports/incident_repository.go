package ports

import (
	"context"

	"logistics/internal/core/domain/model/incident"
	"logistics/internal/core/domain/model/kernel"
)

// IncidentRepository defines the persistence contract for incident aggregates.
type IncidentRepository interface {
	// Add persists a new incident aggregate to storage.
	Add(ctx context.Context, aggregate *incident.Incident) error

	// Update persists changes to an existing incident aggregate.
	Update(ctx context.Context, aggregate *incident.Incident) error

	// Get retrieves an incident aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*incident.Incident, error)

	// DeleteByShipmentID removes every incident reported against the given
	// shipment. Removing zero incidents is not an error.
	DeleteByShipmentID(ctx context.Context, shipmentID kernel.UUID) error
}
