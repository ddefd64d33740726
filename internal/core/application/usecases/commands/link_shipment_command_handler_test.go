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

func TestLinkShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	tariffID := kernel.NewUUID()
	billed := restoredShipment(t, shipment.StatusDelivered, &tariffID, decimalPtr("580"))
	invoice := testInvoice(t)

	cmd, err := commands.NewLinkShipmentCommand(invoice.ID(), billed.ID())
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("IsShipmentLinked", ctx, billed.ID()).Return(false, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, billed.ID()).Return(billed, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Get", ctx, invoice.ID()).Return(invoice, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("GetByIDs", ctx, []kernel.UUID{billed.ID()}).
			Return([]*shipment.Shipment{billed}, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Update", ctx, invoice).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLinkShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, invoice.ContainsShipment(billed.ID()))
	require.True(t, invoice.Total().Equal(decimal.RequireFromString("580")))
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestLinkShipmentCommandHandler_Handle_AlreadyBilledAnywhere(t *testing.T) {
	ctx := t.Context()

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewLinkShipmentCommand(kernel.NewUUID(), shipmentID)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("IsShipmentLinked", ctx, shipmentID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLinkShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestLinkShipmentCommandHandler_Handle_UnpricedShipmentRejected(t *testing.T) {
	ctx := t.Context()

	unpriced := restoredShipment(t, shipment.StatusDelivered, nil, nil)
	cmd, err := commands.NewLinkShipmentCommand(kernel.NewUUID(), unpriced.ID())
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("IsShipmentLinked", ctx, unpriced.ID()).Return(false, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", ctx, unpriced.ID()).Return(unpriced, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewLinkShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
