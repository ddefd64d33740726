package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateRouteRequest is the body of POST /api/v1/routes.
type CreateRouteRequest struct {
	Date        time.Time `json:"date"`
	DriverID    string    `json:"driver_id"`
	VehicleID   string    `json:"vehicle_id"`
	ShipmentIDs []string  `json:"shipment_ids"`
}

// CreateRouteResponse returns the identifier of the created route.
type CreateRouteResponse struct {
	ID string `json:"id"`
}

// CreateRoute handles POST /api/v1/routes.
func (s *Server) CreateRoute(ctx echo.Context) error {
	var req CreateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondBadRequest(ctx, "invalid driver_id")
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return respondBadRequest(ctx, "invalid vehicle_id")
	}
	shipmentIDs, err := parseUUIDList(req.ShipmentIDs)
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment_ids: "+err.Error())
	}

	routeID := kernel.NewUUID()
	cmd, err := commands.NewCreateRouteCommand(routeID, req.Date, driverID, vehicleID, shipmentIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateRouteResponse{ID: routeID.String()})
}

// UpdateRouteRequest is the body of PATCH /api/v1/routes/:id.
// Absent fields are left untouched.
type UpdateRouteRequest struct {
	Date      *time.Time `json:"date,omitempty"`
	VehicleID *string    `json:"vehicle_id,omitempty"`
	Attach    []string   `json:"attach,omitempty"`
	Detach    []string   `json:"detach,omitempty"`
}

// UpdateRoute handles PATCH /api/v1/routes/:id.
func (s *Server) UpdateRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid route id")
	}

	var req UpdateRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	vehicleID, err := optionalUUID(req.VehicleID)
	if err != nil {
		return respondBadRequest(ctx, "invalid vehicle_id")
	}
	attachIDs, err := parseUUIDList(req.Attach)
	if err != nil {
		return respondBadRequest(ctx, "invalid attach: "+err.Error())
	}
	detachIDs, err := parseUUIDList(req.Detach)
	if err != nil {
		return respondBadRequest(ctx, "invalid detach: "+err.Error())
	}

	cmd, err := commands.NewUpdateRouteCommand(routeID, req.Date, vehicleID, attachIDs, detachIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseRoute handles POST /api/v1/routes/:id/close.
func (s *Server) CloseRoute(ctx echo.Context) error {
	routeID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid route id")
	}

	cmd, err := commands.NewCloseRouteCommand(routeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.closeRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// parseUUIDList parses a list of UUID strings.
func parseUUIDList(values []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(values))
	for _, value := range values {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
