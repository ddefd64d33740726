package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates the package dimensions plus optional pricing tariff and
// customer references.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, weight, volume, &tariffID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	weight     decimal.Decimal
	volume     decimal.Decimal
	tariffID   *kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Weight and volume must be strictly positive; tariff and customer
// references are optional but must be valid UUIDs when present.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	weight, volume decimal.Decimal,
	tariffID, customerID *kernel.UUID,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDimensions(weight, volume),
		cmd.setTariffID(tariffID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Weight returns the package weight in kilograms.
func (c CreateShipmentCommand) Weight() decimal.Decimal {
	return c.weight
}

// Volume returns the package volume in cubic meters.
func (c CreateShipmentCommand) Volume() decimal.Decimal {
	return c.volume
}

// TariffID returns the optional pricing tariff reference.
func (c CreateShipmentCommand) TariffID() *kernel.UUID {
	return c.tariffID
}

// CustomerID returns the optional customer reference.
func (c CreateShipmentCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setDimensions(weight, volume decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidError("weight")
	}
	if !volume.IsPositive() {
		return errs.NewValueIsInvalidError("volume")
	}

	c.weight = weight
	c.volume = volume
	return nil
}

func (c *CreateShipmentCommand) setTariffID(tariffID *kernel.UUID) error {
	if tariffID != nil {
		if err := tariffID.Validate(); err != nil {
			return err
		}
	}

	c.tariffID = tariffID
	return nil
}

func (c *CreateShipmentCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return err
		}
	}

	c.customerID = customerID
	return nil
}
