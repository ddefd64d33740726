package invoicerepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
)

// InvoiceDTO represents the database model for an invoice.
type InvoiceDTO struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Total      decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	Paid       bool             `gorm:"not null"`
	IssuedAt   time.Time        `gorm:"not null;index"`
	Remarks    string           `gorm:"type:text"`
	Links      []InvoiceLinkDTO `gorm:"foreignKey:InvoiceID;references:ID"`
	Payments   []PaymentDTO     `gorm:"foreignKey:InvoiceID;references:ID"`
}

// TableName returns the database table name for invoices.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceLinkDTO represents a shipment billed on an invoice. The primary
// key on shipment id enforces that a shipment is billed at most once
// across all invoices.
type InvoiceLinkDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID  uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the database table name for invoice links.
func (InvoiceLinkDTO) TableName() string {
	return "invoice_shipments"
}

// PaymentDTO represents the database model for a payment.
type PaymentDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Method    string          `gorm:"type:varchar(16);not null"`
	Date      time.Time       `gorm:"not null"`
	Remarks   string          `gorm:"type:text"`
}

// TableName returns the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a domain invoice to a DTO with its links and payments.
func fromDomain(aggregate *billing.Invoice) InvoiceDTO {
	shipmentIDs := aggregate.ShipmentIDs()
	links := make([]InvoiceLinkDTO, 0, len(shipmentIDs))
	for _, shipmentID := range shipmentIDs {
		links = append(links, InvoiceLinkDTO{
			ShipmentID: shipmentID.Bytes(),
			InvoiceID:  aggregate.ID().Bytes(),
		})
	}

	domainPayments := aggregate.Payments()
	payments := make([]PaymentDTO, 0, len(domainPayments))
	for _, payment := range domainPayments {
		payments = append(payments, paymentFromDomain(payment))
	}

	return InvoiceDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Total:      aggregate.Total(),
		Paid:       aggregate.IsPaid(),
		IssuedAt:   aggregate.IssuedAt(),
		Remarks:    aggregate.Remarks(),
		Links:      links,
		Payments:   payments,
	}
}

// paymentFromDomain converts a domain payment to a DTO.
func paymentFromDomain(payment *billing.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        payment.ID().Bytes(),
		InvoiceID: payment.InvoiceID().Bytes(),
		Amount:    payment.Amount(),
		Method:    payment.Method().String(),
		Date:      payment.Date(),
		Remarks:   payment.Remarks(),
	}
}

// toDomain converts a DTO to a domain invoice.
func toDomain(dto InvoiceDTO) (*billing.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	shipmentIDs := make([]kernel.UUID, 0, len(dto.Links))
	for _, link := range dto.Links {
		shipmentID, err := kernel.UUIDFromBytes(link.ShipmentID[:])
		if err != nil {
			return nil, err
		}
		shipmentIDs = append(shipmentIDs, shipmentID)
	}

	payments := make([]*billing.Payment, 0, len(dto.Payments))
	for _, paymentDTO := range dto.Payments {
		payment, err := paymentToDomain(paymentDTO)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}

	return billing.RestoreInvoice(id, customerID, dto.Total, dto.IssuedAt, dto.Remarks, shipmentIDs, payments)
}

// paymentToDomain converts a DTO to a domain payment.
func paymentToDomain(dto PaymentDTO) (*billing.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}

	method, err := billing.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	return billing.RestorePayment(id, invoiceID, dto.Amount, method, dto.Date, dto.Remarks)
}
