package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateShipmentCommandHandler_Handle_WithTariff(t *testing.T) {
	ctx := t.Context()

	// base 500, 20/kg, 10/m3: a 3kg 2m3 shipment prices at 580
	priceTariff := testTariff(t, kernel.ZoneNorth, "500", "20", "10")
	tariffID := priceTariff.ID()

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		decimal.RequireFromString("3"),
		decimal.RequireFromString("2"),
		&tariffID,
		nil,
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	tariffRepo := new(MockTariffRepository)
	uow := new(MockUoW)

	var created *shipment.Shipment
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("Get", ctx, tariffID).Return(priceTariff, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*shipment.Shipment)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, shipment.StatusPending, created.Status())
	require.NotNil(t, created.Estimate())
	require.True(t, created.Estimate().Equal(decimal.RequireFromString("580")))
	shipmentRepo.AssertExpectations(t)
	tariffRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_WithoutTariff(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		decimal.RequireFromString("3"),
		decimal.RequireFromString("2"),
		nil,
		nil,
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	var created *shipment.Shipment
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*shipment.Shipment)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Nil(t, created.Estimate())
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_TariffNotFound(t *testing.T) {
	ctx := t.Context()

	tariffID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		decimal.RequireFromString("3"),
		decimal.RequireFromString("2"),
		&tariffID,
		nil,
	)
	require.NoError(t, err)

	tariffRepo := new(MockTariffRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("Get", ctx, tariffID).
			Return(nil, errs.NewObjectNotFoundError("tariff", tariffID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	factory := new(MockShipmentUoWFactory)
	handler := commands.NewCreateShipmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
