package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
	)
	ErrNoShipmentChangesRequested = errors.New("update shipment command carries no changes")
	ErrTariffChangeIsAmbiguous    = errors.New("cannot both assign and clear the tariff")
	ErrDimensionsAreIncomplete    = errors.New("weight and volume must be updated together")
)

// UpdateShipmentCommand represents a request to modify an existing
// shipment. Each change is optional; the command must carry at least one.
// Dimensions travel as a pair so the estimate is always recomputed from a
// consistent weight/volume snapshot.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	weight      *decimal.Decimal
	volume      *decimal.Decimal
	tariffID    *kernel.UUID
	clearTariff bool
	status      *shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to modify a shipment.
// weight and volume must be both nil or both set; tariffID and clearTariff
// are mutually exclusive.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	weight, volume *decimal.Decimal,
	tariffID *kernel.UUID,
	clearTariff bool,
	status *shipment.Status,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setDimensions(weight, volume),
		cmd.setTariffChange(tariffID, clearTariff),
		cmd.setStatus(status),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	if !cmd.HasChanges() {
		return UpdateShipmentCommand{}, ErrNoShipmentChangesRequested
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to modify.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Weight returns the new weight, nil when dimensions are unchanged.
func (c UpdateShipmentCommand) Weight() *decimal.Decimal {
	return c.weight
}

// Volume returns the new volume, nil when dimensions are unchanged.
func (c UpdateShipmentCommand) Volume() *decimal.Decimal {
	return c.volume
}

// TariffID returns the tariff to assign, nil when no assignment is requested.
func (c UpdateShipmentCommand) TariffID() *kernel.UUID {
	return c.tariffID
}

// ClearTariff reports whether the tariff reference should be removed.
func (c UpdateShipmentCommand) ClearTariff() bool {
	return c.clearTariff
}

// Status returns the requested status transition, nil when unchanged.
func (c UpdateShipmentCommand) Status() *shipment.Status {
	return c.status
}

// HasChanges reports whether the command carries at least one change.
func (c UpdateShipmentCommand) HasChanges() bool {
	return c.weight != nil || c.tariffID != nil || c.clearTariff || c.status != nil
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setDimensions(weight, volume *decimal.Decimal) error {
	if (weight == nil) != (volume == nil) {
		return ErrDimensionsAreIncomplete
	}
	if weight == nil {
		return nil
	}

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

func (c *UpdateShipmentCommand) setTariffChange(tariffID *kernel.UUID, clearTariff bool) error {
	if tariffID != nil && clearTariff {
		return ErrTariffChangeIsAmbiguous
	}
	if tariffID != nil {
		if err := tariffID.Validate(); err != nil {
			return err
		}
	}

	c.tariffID = tariffID
	c.clearTariff = clearTariff
	return nil
}

func (c *UpdateShipmentCommand) setStatus(status *shipment.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}
