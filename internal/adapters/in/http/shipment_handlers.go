package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	Weight     decimal.Decimal `json:"weight"`
	Volume     decimal.Decimal `json:"volume"`
	TariffID   *string         `json:"tariff_id,omitempty"`
	CustomerID *string         `json:"customer_id,omitempty"`
}

// CreateShipmentResponse returns the identifier of the created shipment.
type CreateShipmentResponse struct {
	ID string `json:"id"`
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	tariffID, err := optionalUUID(req.TariffID)
	if err != nil {
		return respondBadRequest(ctx, "invalid tariff_id: "+err.Error())
	}
	customerID, err := optionalUUID(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer_id: "+err.Error())
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, req.Weight, req.Volume, tariffID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{ID: shipmentID.String()})
}

// UpdateShipmentRequest is the body of PATCH /api/v1/shipments/:id.
// Absent fields are left untouched; weight and volume travel together.
type UpdateShipmentRequest struct {
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	Volume      *decimal.Decimal `json:"volume,omitempty"`
	TariffID    *string          `json:"tariff_id,omitempty"`
	ClearTariff bool             `json:"clear_tariff,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

// UpdateShipment handles PATCH /api/v1/shipments/:id.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment id")
	}

	var req UpdateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	tariffID, err := optionalUUID(req.TariffID)
	if err != nil {
		return respondBadRequest(ctx, "invalid tariff_id: "+err.Error())
	}

	var status *shipment.Status
	if req.Status != nil {
		parsed, err := shipment.StatusFromString(*req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, req.Weight, req.Volume, tariffID, req.ClearTariff, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipmentEstimateResponse is the body of GET /api/v1/shipments/:id/estimate.
// Estimate is null for unpriced shipments.
type ShipmentEstimateResponse struct {
	ID       string           `json:"id"`
	Weight   decimal.Decimal  `json:"weight"`
	Volume   decimal.Decimal  `json:"volume"`
	Status   string           `json:"status"`
	Estimate *decimal.Decimal `json:"estimate"`
}

// GetShipmentEstimate handles GET /api/v1/shipments/:id/estimate.
func (s *Server) GetShipmentEstimate(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentEstimateQuery(shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getShipmentEstimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentEstimateResponse{
		ID:       result.ID.String(),
		Weight:   result.Weight,
		Volume:   result.Volume,
		Status:   result.Status,
		Estimate: result.Estimate,
	})
}

// optionalUUID parses a UUID from an optional string field.
func optionalUUID(value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil //nolint:nilnil // absent field maps to absent UUID
	}
	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
