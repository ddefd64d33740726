package http

import (
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest is the body of POST /api/v1/invoices.
type CreateInvoiceRequest struct {
	CustomerID string    `json:"customer_id"`
	IssuedAt   time.Time `json:"issued_at"`
	Remarks    string    `json:"remarks,omitempty"`
}

// CreateInvoiceResponse returns the identifier of the created invoice.
type CreateInvoiceResponse struct {
	ID string `json:"id"`
}

// CreateInvoice handles POST /api/v1/invoices.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var req CreateInvoiceRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer_id")
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(invoiceID, customerID, req.IssuedAt, req.Remarks)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateInvoiceResponse{ID: invoiceID.String()})
}

// DeleteInvoice handles DELETE /api/v1/invoices/:id.
func (s *Server) DeleteInvoice(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid invoice id")
	}

	cmd, err := commands.NewDeleteInvoiceCommand(invoiceID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteInvoiceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// LinkShipmentRequest is the body of POST /api/v1/invoices/:id/shipments.
type LinkShipmentRequest struct {
	ShipmentID string `json:"shipment_id"`
}

// LinkShipment handles POST /api/v1/invoices/:id/shipments.
func (s *Server) LinkShipment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid invoice id")
	}

	var req LinkShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	shipmentID, err := kernel.UUIDFromString(req.ShipmentID)
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment_id")
	}

	cmd, err := commands.NewLinkShipmentCommand(invoiceID, shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.linkShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnlinkShipment handles DELETE /api/v1/invoices/:id/shipments/:shipmentId.
func (s *Server) UnlinkShipment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid invoice id")
	}
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return respondBadRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewUnlinkShipmentCommand(invoiceID, shipmentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.unlinkShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPaymentRequest is the body of POST /api/v1/invoices/:id/payments.
type RecordPaymentRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	Date    time.Time       `json:"date"`
	Remarks string          `json:"remarks,omitempty"`
}

// RecordPaymentResponse returns the identifier of the recorded payment.
type RecordPaymentResponse struct {
	ID string `json:"id"`
}

// RecordPayment handles POST /api/v1/invoices/:id/payments.
func (s *Server) RecordPayment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid invoice id")
	}

	var req RecordPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	method, err := billing.MethodFromString(req.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(paymentID, invoiceID, req.Amount, method, req.Date, req.Remarks)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RecordPaymentResponse{ID: paymentID.String()})
}

// DeletePayment handles DELETE /api/v1/invoices/:id/payments/:paymentId.
func (s *Server) DeletePayment(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "id")
	if err != nil {
		return respondBadRequest(ctx, "invalid invoice id")
	}
	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return respondBadRequest(ctx, "invalid payment id")
	}

	cmd, err := commands.NewDeletePaymentCommand(invoiceID, paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deletePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnpaidInvoiceResponse is one row of GET /api/v1/invoices/unpaid.
type UnpaidInvoiceResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	AmountDue  decimal.Decimal `json:"amount_due"`
	IssuedAt   time.Time       `json:"issued_at"`
}

// GetUnpaidInvoices handles GET /api/v1/invoices/unpaid.
func (s *Server) GetUnpaidInvoices(ctx echo.Context) error {
	query := queries.NewGetUnpaidInvoicesQuery()

	results, err := s.getUnpaidInvoicesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]UnpaidInvoiceResponse, len(results))
	for i, invoice := range results {
		response[i] = UnpaidInvoiceResponse{
			ID:         invoice.ID.String(),
			CustomerID: invoice.CustomerID.String(),
			Total:      invoice.Total,
			AmountPaid: invoice.AmountPaid,
			AmountDue:  invoice.AmountDue,
			IssuedAt:   invoice.IssuedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
