package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"
)

// EventPublisher delivers domain events raised by an aggregate once the
// transaction that raised them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// UpdateShipmentCommandHandler handles shipment modifications: dimensions,
// tariff assignment and lifecycle transitions. Every mutation recomputes
// the delivery estimate inside the aggregate, so a stored estimate never
// drifts from the stored dimensions and tariff.
//
// A transition landing on the delivered status publishes the shipment's
// delivered event after commit; the route lifecycle listener then closes
// fully-delivered routes in its own transaction.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  EventPublisher
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher EventPublisher,
) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the shipment update command.
// Changes are applied in a fixed order: tariff, dimensions, status. The
// shipment write and all derived-state recomputation commit atomically;
// event publication happens strictly after.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	currentTariff, err := h.resolveTariff(ctx, uow, cmd, aggregate.TariffID())
	if err != nil {
		return err
	}

	if cmd.TariffID() != nil || cmd.ClearTariff() {
		if err = aggregate.AssignTariff(currentTariff); err != nil {
			return err
		}
	}

	if cmd.Weight() != nil {
		if err = aggregate.SetDimensions(*cmd.Weight(), *cmd.Volume(), currentTariff); err != nil {
			return err
		}
	}

	if cmd.Status() != nil {
		if err = aggregate.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	events := aggregate.Events()
	aggregate.ClearEvents()

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, events...)
}

// resolveTariff loads the tariff the shipment will reference after the
// command is applied: the newly assigned one, nil when clearing, or the
// currently referenced one when only dimensions change.
func (h *UpdateShipmentCommandHandler) resolveTariff(
	ctx context.Context,
	uow ShipmentUoW,
	cmd UpdateShipmentCommand,
	currentTariffID *kernel.UUID,
) (*tariff.Tariff, error) {
	switch {
	case cmd.TariffID() != nil:
		return uow.TariffRepository().Get(ctx, *cmd.TariffID())
	case cmd.ClearTariff():
		return nil, nil //nolint:nilnil //nil tariff is the cleared state
	case cmd.Weight() != nil && currentTariffID != nil:
		return uow.TariffRepository().Get(ctx, *currentTariffID)
	default:
		return nil, nil //nolint:nilnil //no tariff involved in this update
	}
}
