package commands

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
)

// RegisterVehicleCommandHandler handles vehicle registration.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
func NewRegisterVehicleCommandHandler(uowFactory VehicleUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
func (h *RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
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

	aggregate, err := vehicle.NewVehicle(
		cmd.VehicleID(), cmd.Registration(), cmd.Class(),
		cmd.CapacityWeight(), cmd.CapacityVolume(), cmd.State(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
