// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the logistics system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: A domain service validating driver, vehicle and shipment
//     assignments for a route (licensing, zone homogeneity, capacity)
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
