package commands

import (
	"context"

	"logistics/internal/core/domain/model/incident"
)

// CreateIncidentCommandHandler handles incident reporting. The referenced
// shipment must exist; incidents against deleted shipments are rejected
// with ObjectNotFoundError. Open routes carrying the shipment are flagged
// as disrupted in the same transaction.
type CreateIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
}

// NewCreateIncidentCommandHandler creates a handler for incident reporting.
func NewCreateIncidentCommandHandler(uowFactory IncidentUoWFactory) CreateIncidentCommandHandler {
	return CreateIncidentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the incident creation command.
func (h *CreateIncidentCommandHandler) Handle(ctx context.Context, cmd CreateIncidentCommand) error {
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

	if _, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID()); err != nil {
		return err
	}

	aggregate, err := incident.NewIncident(
		cmd.IncidentID(), cmd.ShipmentID(), cmd.Kind(),
		cmd.Description(), cmd.Wilaya(), cmd.Commune(),
	)
	if err != nil {
		return err
	}

	if err = uow.IncidentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	openRoutes, err := uow.RouteRepository().GetOpenByShipmentID(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}
	for _, carrier := range openRoutes {
		if err = carrier.ReportIncident(); err != nil {
			return err
		}
		if err = uow.RouteRepository().Update(ctx, carrier); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
