package http

import (
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/incident"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateIncidentRequest is the body of POST /api/v1/incidents.
type CreateIncidentRequest struct {
	ShipmentID  string `json:"shipment_id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Wilaya      string `json:"wilaya"`
	Commune     string `json:"commune"`
}

// CreateIncidentResponse returns the identifier of the created incident.
type CreateIncidentResponse struct {
	ID string `json:"id"`
}

// CreateIncident handles POST /api/v1/incidents.
func (s *Server) CreateIncident(ctx echo.Context) error {
	var req CreateIncidentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment_id")
	}
	kind, err := incident.KindFromString(req.Kind)
	if err != nil {
		return respondError(ctx, err)
	}

	incidentID := kernel.NewUUID()
	cmd, err := commands.NewCreateIncidentCommand(
		incidentID, shipmentID, kind, req.Description, req.Wilaya, req.Commune,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createIncidentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateIncidentResponse{ID: incidentID.String()})
}

// ResolveIncidentRequest is the body of POST /api/v1/incidents/:id/resolve.
type ResolveIncidentRequest struct {
	Resolution string `json:"resolution"`
}

// ResolveIncident handles POST /api/v1/incidents/:id/resolve.
func (s *Server) ResolveIncident(ctx echo.Context) error {
	incidentID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid incident id")
	}

	var req ResolveIncidentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewResolveIncidentCommand(incidentID, req.Resolution)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resolveIncidentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
