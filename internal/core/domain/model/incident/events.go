package incident

import "logistics/internal/core/domain/model/kernel"

// EscalationRequiredEventName routes EscalationRequiredEvent through the
// event dispatcher.
const EscalationRequiredEventName = "incident.escalation_required"

// EscalationRequiredEvent is raised when a severe incident (lost or
// damaged shipment) transitions into Resolved. The consumer must force
// the shipment into DeliveryFailed within the same transaction as the
// incident change: the escalation is imposed, not advisory, and the
// incident transition fails if the shipment write fails.
type EscalationRequiredEvent struct {
	IncidentID kernel.UUID
	ShipmentID kernel.UUID
}

// EventName implements kernel.DomainEvent.
func (EscalationRequiredEvent) EventName() string {
	return EscalationRequiredEventName
}
