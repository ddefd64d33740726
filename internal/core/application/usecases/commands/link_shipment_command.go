package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrLinkShipmentCommandIsNotConstructed = errors.New(
	"LinkShipmentCommand must be created via NewLinkShipmentCommand constructor",
)

// LinkShipmentCommand represents a request to bill a shipment on an
// invoice.
type LinkShipmentCommand struct { //nolint:recvcheck //using for validation
	invoiceID  kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewLinkShipmentCommand creates a command to link a shipment to an invoice.
func NewLinkShipmentCommand(invoiceID, shipmentID kernel.UUID) (LinkShipmentCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		shipmentID.Validate(),
	); err != nil {
		return LinkShipmentCommand{}, err
	}

	return LinkShipmentCommand{
		invoiceID:  invoiceID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkShipmentCommand) Validate() error {
	return c.guard.Validate(ErrLinkShipmentCommandIsNotConstructed)
}

// InvoiceID returns the invoice's identifier.
func (c LinkShipmentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// ShipmentID returns the shipment's identifier.
func (c LinkShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
