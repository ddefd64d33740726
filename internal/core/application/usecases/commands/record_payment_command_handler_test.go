package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func recordPayment(t *testing.T, invoice *billing.Invoice, amount string) {
	t.Helper()
	ctx := t.Context()

	cmd, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		invoice.ID(),
		decimal.RequireFromString(amount),
		billing.MethodCash,
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Get", ctx, invoice.ID()).Return(invoice, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Update", ctx, invoice).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestRecordPaymentCommandHandler_Handle_PartialPaymentsSettleExactly(t *testing.T) {
	invoice := testInvoice(t)
	require.NoError(t, invoice.RecomputeTotal([]decimal.Decimal{decimal.RequireFromString("100")}))

	recordPayment(t, invoice, "40")
	require.False(t, invoice.IsFullyPaid())
	require.True(t, invoice.AmountDue().Equal(decimal.RequireFromString("60")))

	recordPayment(t, invoice, "35")
	require.False(t, invoice.IsFullyPaid())
	require.True(t, invoice.AmountDue().Equal(decimal.RequireFromString("25")))

	recordPayment(t, invoice, "25")
	require.True(t, invoice.IsFullyPaid())
	require.True(t, invoice.AmountDue().IsZero())
	require.True(t, invoice.AmountPaid().Equal(decimal.RequireFromString("100")))
}

func TestRecordPaymentCommandHandler_Handle_NonPositiveAmountRejected(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		kernel.NewUUID(),
		decimal.Zero,
		billing.MethodCash,
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		"",
	)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRecordPaymentCommandHandler_Handle_InvoiceNotFound(t *testing.T) {
	ctx := t.Context()

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewRecordPaymentCommand(
		kernel.NewUUID(),
		invoiceID,
		decimal.RequireFromString("40"),
		billing.MethodBankTransfer,
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("Get", ctx, invoiceID).
			Return(nil, errs.NewObjectNotFoundError("invoice", invoiceID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPaymentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
