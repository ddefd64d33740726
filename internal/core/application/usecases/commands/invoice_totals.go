package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// recomputeInvoiceTotal re-derives the invoice total from the estimates
// of its linked shipments. A linked shipment without an estimate is a
// broken invariant (linking requires pricing), reported as fatal and
// never repaired.
func recomputeInvoiceTotal(ctx context.Context, uow InvoiceUoW, invoice *billing.Invoice) error {
	shipmentIDs := invoice.ShipmentIDs()
	if len(shipmentIDs) == 0 {
		return invoice.RecomputeTotal(nil)
	}

	shipments, err := uow.ShipmentRepository().GetByIDs(ctx, shipmentIDs)
	if err != nil {
		return err
	}

	estimates := make([]decimal.Decimal, 0, len(shipments))
	for _, s := range shipments {
		estimate := s.Estimate()
		if estimate == nil {
			return errs.NewFatalInconsistencyError(
				fmt.Sprintf("invoiced shipment %s has no estimate", s.ID()),
			)
		}
		estimates = append(estimates, *estimate)
	}

	return invoice.RecomputeTotal(estimates)
}
