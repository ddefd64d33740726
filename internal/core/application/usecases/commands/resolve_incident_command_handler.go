package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/incident"
)

// ResolveIncidentCommandHandler handles incident resolution.
//
// Resolving a severe incident (lost or damaged shipment) escalates: the
// affected shipment is forced into its delivery-failed status within the
// same transaction. The escalation is not advisory; if the shipment write
// fails, the incident resolution rolls back with it.
type ResolveIncidentCommandHandler struct {
	uowFactory IncidentUoWFactory
	now        func() time.Time
}

// NewResolveIncidentCommandHandler creates a handler for incident resolution.
func NewResolveIncidentCommandHandler(uowFactory IncidentUoWFactory) ResolveIncidentCommandHandler {
	return ResolveIncidentCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the incident resolution command.
// The resolution timestamp is stamped exactly once, on the first
// transition into a settling state.
func (h *ResolveIncidentCommandHandler) Handle(ctx context.Context, cmd ResolveIncidentCommand) error {
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

	aggregate, err := uow.IncidentRepository().Get(ctx, cmd.IncidentID())
	if err != nil {
		return err
	}

	if err = aggregate.Resolve(cmd.Resolution(), h.now()); err != nil {
		return err
	}

	for _, event := range aggregate.Events() {
		escalation, ok := event.(incident.EscalationRequiredEvent)
		if !ok {
			continue
		}
		if err = h.escalate(ctx, uow, escalation); err != nil {
			return err
		}
	}
	aggregate.ClearEvents()

	if err = uow.IncidentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// escalate forces the affected shipment into delivery-failed, bypassing
// the normal lifecycle transitions.
func (h *ResolveIncidentCommandHandler) escalate(
	ctx context.Context,
	uow IncidentUoW,
	escalation incident.EscalationRequiredEvent,
) error {
	affected, err := uow.ShipmentRepository().Get(ctx, escalation.ShipmentID)
	if err != nil {
		return err
	}

	affected.MarkDeliveryFailed()
	return uow.ShipmentRepository().Update(ctx, affected)
}
