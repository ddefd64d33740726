package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrUnlinkShipmentCommandIsNotConstructed = errors.New(
	"UnlinkShipmentCommand must be created via NewUnlinkShipmentCommand constructor",
)

// UnlinkShipmentCommand represents a request to remove a shipment from an
// invoice.
type UnlinkShipmentCommand struct { //nolint:recvcheck //using for validation
	invoiceID  kernel.UUID
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnlinkShipmentCommand creates a command to unlink a shipment from an
// invoice.
func NewUnlinkShipmentCommand(invoiceID, shipmentID kernel.UUID) (UnlinkShipmentCommand, error) {
	if err := errors.Join(
		invoiceID.Validate(),
		shipmentID.Validate(),
	); err != nil {
		return UnlinkShipmentCommand{}, err
	}

	return UnlinkShipmentCommand{
		invoiceID:  invoiceID,
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UnlinkShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUnlinkShipmentCommandIsNotConstructed)
}

// InvoiceID returns the invoice's identifier.
func (c UnlinkShipmentCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// ShipmentID returns the shipment's identifier.
func (c UnlinkShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
