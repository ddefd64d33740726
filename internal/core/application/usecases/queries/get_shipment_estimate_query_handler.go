package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetShipmentEstimateQueryHandler reads a shipment's pricing view
// straight from the database, bypassing the aggregate.
type GetShipmentEstimateQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentEstimateQueryHandler creates a handler for estimate queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentEstimateQueryHandler(db *gorm.DB) GetShipmentEstimateQueryHandler {
	return GetShipmentEstimateQueryHandler{db: db}
}

// Handle executes the estimate query.
// Returns ObjectNotFoundError when the shipment does not exist.
func (h GetShipmentEstimateQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentEstimateQuery,
) (GetShipmentEstimateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentEstimateQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			weight,
			volume,
			status,
			estimate
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().String()).Rows()
	if err != nil {
		return GetShipmentEstimateQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetShipmentEstimateQueryResponse{}, err
		}
		return GetShipmentEstimateQueryResponse{},
			errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	var resp GetShipmentEstimateQueryResponse
	var id uuid.UUID
	var estimate decimal.NullDecimal

	if err = rows.Scan(&id, &resp.Weight, &resp.Volume, &resp.Status, &estimate); err != nil {
		return GetShipmentEstimateQueryResponse{}, err
	}

	shipmentID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetShipmentEstimateQueryResponse{}, idErr
	}
	resp.ID = shipmentID

	if estimate.Valid {
		resp.Estimate = &estimate.Decimal
	}

	return resp, rows.Err()
}
