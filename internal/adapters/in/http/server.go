// Package http exposes the application's use cases over a REST API built
// on echo. Handlers stay thin: decode the request, build a command or
// query, delegate to the application layer, and map domain errors to
// HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler  commands.CreateShipmentCommandHandler
	updateShipmentHandler  commands.UpdateShipmentCommandHandler
	deleteShipmentHandler  commands.DeleteShipmentCommandHandler
	registerDriverHandler  commands.RegisterDriverCommandHandler
	registerVehicleHandler commands.RegisterVehicleCommandHandler
	createRouteHandler     commands.CreateRouteCommandHandler
	updateRouteHandler     commands.UpdateRouteCommandHandler
	closeRouteHandler      commands.CloseRouteCommandHandler
	createIncidentHandler  commands.CreateIncidentCommandHandler
	resolveIncidentHandler commands.ResolveIncidentCommandHandler
	createInvoiceHandler   commands.CreateInvoiceCommandHandler
	deleteInvoiceHandler   commands.DeleteInvoiceCommandHandler
	linkShipmentHandler    commands.LinkShipmentCommandHandler
	unlinkShipmentHandler  commands.UnlinkShipmentCommandHandler
	recordPaymentHandler   commands.RecordPaymentCommandHandler
	deletePaymentHandler   commands.DeletePaymentCommandHandler

	// Query handlers
	getShipmentEstimateHandler queries.GetShipmentEstimateQueryHandler
	getUnpaidInvoicesHandler   queries.GetUnpaidInvoicesQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	CreateShipment  commands.CreateShipmentCommandHandler
	UpdateShipment  commands.UpdateShipmentCommandHandler
	DeleteShipment  commands.DeleteShipmentCommandHandler
	RegisterDriver  commands.RegisterDriverCommandHandler
	RegisterVehicle commands.RegisterVehicleCommandHandler
	CreateRoute     commands.CreateRouteCommandHandler
	UpdateRoute     commands.UpdateRouteCommandHandler
	CloseRoute      commands.CloseRouteCommandHandler
	CreateIncident  commands.CreateIncidentCommandHandler
	ResolveIncident commands.ResolveIncidentCommandHandler
	CreateInvoice   commands.CreateInvoiceCommandHandler
	DeleteInvoice   commands.DeleteInvoiceCommandHandler
	LinkShipment    commands.LinkShipmentCommandHandler
	UnlinkShipment  commands.UnlinkShipmentCommandHandler
	RecordPayment   commands.RecordPaymentCommandHandler
	DeletePayment   commands.DeletePaymentCommandHandler

	GetShipmentEstimate queries.GetShipmentEstimateQueryHandler
	GetUnpaidInvoices   queries.GetUnpaidInvoicesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createShipmentHandler:      handlers.CreateShipment,
		updateShipmentHandler:      handlers.UpdateShipment,
		deleteShipmentHandler:      handlers.DeleteShipment,
		registerDriverHandler:      handlers.RegisterDriver,
		registerVehicleHandler:     handlers.RegisterVehicle,
		createRouteHandler:         handlers.CreateRoute,
		updateRouteHandler:         handlers.UpdateRoute,
		closeRouteHandler:          handlers.CloseRoute,
		createIncidentHandler:      handlers.CreateIncident,
		resolveIncidentHandler:     handlers.ResolveIncident,
		createInvoiceHandler:       handlers.CreateInvoice,
		deleteInvoiceHandler:       handlers.DeleteInvoice,
		linkShipmentHandler:        handlers.LinkShipment,
		unlinkShipmentHandler:      handlers.UnlinkShipment,
		recordPaymentHandler:       handlers.RecordPayment,
		deletePaymentHandler:       handlers.DeletePayment,
		getShipmentEstimateHandler: handlers.GetShipmentEstimate,
		getUnpaidInvoicesHandler:   handlers.GetUnpaidInvoices,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.PATCH("/shipments/:id", s.UpdateShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.GET("/shipments/:id/estimate", s.GetShipmentEstimate)

	api.POST("/drivers", s.RegisterDriver)
	api.POST("/vehicles", s.RegisterVehicle)

	api.POST("/routes", s.CreateRoute)
	api.PATCH("/routes/:id", s.UpdateRoute)
	api.POST("/routes/:id/close", s.CloseRoute)

	api.POST("/incidents", s.CreateIncident)
	api.POST("/incidents/:id/resolve", s.ResolveIncident)

	api.POST("/invoices", s.CreateInvoice)
	api.DELETE("/invoices/:id", s.DeleteInvoice)
	api.POST("/invoices/:id/shipments", s.LinkShipment)
	api.DELETE("/invoices/:id/shipments/:shipmentId", s.UnlinkShipment)
	api.POST("/invoices/:id/payments", s.RecordPayment)
	api.DELETE("/invoices/:id/payments/:paymentId", s.DeletePayment)
	api.GET("/invoices/unpaid", s.GetUnpaidInvoices)
}

// ErrorResponse is the JSON body returned on failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain error kinds to HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// respondBadRequest returns a 400 with the given message prefix.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}
