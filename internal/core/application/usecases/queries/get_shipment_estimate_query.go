package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentEstimateQueryIsNotConstructed = errors.New(
	"GetShipmentEstimateQuery must be created via NewGetShipmentEstimateQuery constructor",
)

// GetShipmentEstimateQuery retrieves the pricing view of a shipment:
// its dimensions, status and the stored delivery estimate.
//
// Example:
//
//	query, err := NewGetShipmentEstimateQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetShipmentEstimateQueryHandler(db)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get estimate: %w", err)
//	}
//	if view.Estimate != nil {
//	    fmt.Printf("Estimated at %s\n", view.Estimate)
//	}
type GetShipmentEstimateQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentEstimateQuery creates a query for a shipment's estimate.
func NewGetShipmentEstimateQuery(shipmentID kernel.UUID) (GetShipmentEstimateQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentEstimateQuery{}, err
	}

	return GetShipmentEstimateQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentEstimateQueryIsNotConstructed)
}

// ShipmentID returns the queried shipment's identifier.
func (q GetShipmentEstimateQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// GetShipmentEstimateQueryResponse represents the pricing view of a
// shipment. Estimate is nil for unpriced shipments.
type GetShipmentEstimateQueryResponse struct {
	ID       kernel.UUID
	Weight   decimal.Decimal
	Volume   decimal.Decimal
	Status   string
	Estimate *decimal.Decimal
}
