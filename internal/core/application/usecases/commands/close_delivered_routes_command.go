package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCloseDeliveredRoutesCommandIsNotConstructed = errors.New(
	"CloseDeliveredRoutesCommand must be created via NewCloseDeliveredRoutesCommand constructor",
)

// CloseDeliveredRoutesCommand triggers route closure evaluation for
// every open route holding the given shipment. Issued by the delivered
// event listener after a shipment reaches its delivered status.
type CloseDeliveredRoutesCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseDeliveredRoutesCommand creates a command to evaluate route
// closure for a delivered shipment.
func NewCloseDeliveredRoutesCommand(shipmentID kernel.UUID) (CloseDeliveredRoutesCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CloseDeliveredRoutesCommand{}, err
	}

	return CloseDeliveredRoutesCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseDeliveredRoutesCommand) Validate() error {
	return c.guard.Validate(ErrCloseDeliveredRoutesCommandIsNotConstructed)
}

// ShipmentID returns the delivered shipment's identifier.
func (c CloseDeliveredRoutesCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
