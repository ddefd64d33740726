package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/tariff"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// registration. When the command carries a tariff reference, the tariff is
// loaded and the delivery estimate is derived at creation time.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// The shipment starts in pending status; its estimate is nil when no
// tariff is referenced and derived from the tariff rates otherwise.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var priceTariff *tariff.Tariff
	if cmd.TariffID() != nil {
		var err error
		priceTariff, err = uow.TariffRepository().Get(ctx, *cmd.TariffID())
		if err != nil {
			return err
		}
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.Weight(), cmd.Volume(), priceTariff, cmd.CustomerID(),
	)
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
