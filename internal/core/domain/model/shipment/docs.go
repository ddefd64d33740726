// Package shipment provides domain entities and business logic for shipment
// management in the logistics system. It implements the Shipment aggregate
// root with lifecycle management, state transitions, and derived pricing.
//
// The package includes:
//   - Shipment: The aggregate root that manages shipment identity, dimensions, pricing and lifecycle
//   - Status: A state machine covering the delivery pipeline and its failure branches
//   - DeliveredEvent: The domain event raised when a shipment is delivered
//
// Key business rules:
//   - Shipments must have a valid unique identifier and strictly positive weight and volume
//   - The estimated amount is nil exactly when no tariff is assigned, and equals
//     the tariff's linear formula otherwise, recomputed on every relevant mutation
//   - Delivered and Returned are terminal statuses; DeliveryFailed is recoverable
//   - Attribute edits are gated on the status modification rule
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
