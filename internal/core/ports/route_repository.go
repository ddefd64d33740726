package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates,
// including the set of shipments attached to each route.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate, reconciling
	// the stored shipment set with the aggregate's.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetOpenByShipmentID retrieves the routes that are not closed and have
	// the given shipment attached. Used by the delivered-shipment cascade
	// to find routes eligible for auto-closure.
	GetOpenByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*route.Route, error)
}
