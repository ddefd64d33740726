package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCloseRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	carried := restoredShipment(t, shipment.StatusOutForDelivery, nil, nil)
	routeDriver := testDriver(t, driver.LicenseCategoryC, false)
	routeVehicle := testVehicle(t, vehicle.ClassTruck, "1000", "20")
	aggregate := testRoute(t, routeDriver.ID(), routeVehicle.ID(), []kernel.UUID{carried.ID()})

	cmd, err := commands.NewCloseRouteCommand(aggregate.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, routeDriver.ID()).Return(routeDriver, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, routeVehicle.ID()).Return(routeVehicle, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByIDs", ctx, []kernel.UUID{carried.ID()}).
			Return([]*shipment.Shipment{carried}, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Update", ctx, routeDriver).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCloseRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, route.StatusClosed, aggregate.Status())
	require.True(t, routeDriver.IsAvailable())
	routeRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

// Manual closure is still a route change, so the assignment checks run
// against the route's current state before the status flips.
func TestCloseRouteCommandHandler_Handle_OverCapacityBlocksClosure(t *testing.T) {
	ctx := t.Context()

	first := restoredShipment(t, shipment.StatusOutForDelivery, nil, nil)
	second := restoredShipment(t, shipment.StatusOutForDelivery, nil, nil)
	routeDriver := testDriver(t, driver.LicenseCategoryB, false)
	// 3kg each against a 5kg vehicle: the pair overshoots the cap.
	routeVehicle := testVehicle(t, vehicle.ClassCar, "5", "20")
	aggregate := testRoute(t, routeDriver.ID(), routeVehicle.ID(), []kernel.UUID{first.ID(), second.ID()})

	cmd, err := commands.NewCloseRouteCommand(aggregate.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, routeDriver.ID()).Return(routeDriver, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, routeVehicle.ID()).Return(routeVehicle, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByIDs", ctx, []kernel.UUID{first.ID(), second.ID()}).
			Return([]*shipment.Shipment{first, second}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCloseRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.Equal(t, route.StatusActive, aggregate.Status())
	routeRepo.AssertNotCalled(t, "Update", ctx, aggregate)
	driverRepo.AssertNotCalled(t, "Update", ctx, routeDriver)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCloseRouteCommandHandler_Handle_AlreadyClosedRejected(t *testing.T) {
	ctx := t.Context()

	routeDriver := testDriver(t, driver.LicenseCategoryC, false)
	routeVehicle := testVehicle(t, vehicle.ClassTruck, "1000", "20")
	aggregate := testRoute(t, routeDriver.ID(), routeVehicle.ID(), nil)
	require.NoError(t, aggregate.Close())

	cmd, err := commands.NewCloseRouteCommand(aggregate.ID())
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("Get", ctx, routeDriver.ID()).Return(routeDriver, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, routeVehicle.ID()).Return(routeVehicle, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCloseRouteCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, route.ErrRouteIsClosed)
	require.False(t, routeDriver.IsAvailable())
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}
