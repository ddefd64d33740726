package shipment

import "logistics/internal/core/domain/model/kernel"

// DeliveredEventName routes DeliveredEvent through the event dispatcher.
const DeliveredEventName = "shipment.delivered"

// DeliveredEvent is raised when a shipment's status lands on Delivered.
// Route lifecycle listeners consume it to re-evaluate closure of every
// active route holding the shipment.
type DeliveredEvent struct {
	ShipmentID kernel.UUID
}

// EventName implements kernel.DomainEvent.
func (DeliveredEvent) EventName() string {
	return DeliveredEventName
}
