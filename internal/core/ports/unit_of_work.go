package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ShipmentRepository returns a ShipmentRepository instance bound to the current transaction.
	// Repository will use the transaction started by Begin().
	ShipmentRepository() ShipmentRepository

	// TariffRepository returns a TariffRepository instance bound to the current transaction.
	TariffRepository() TariffRepository

	// DriverRepository returns a DriverRepository instance bound to the current transaction.
	DriverRepository() DriverRepository

	// VehicleRepository returns a VehicleRepository instance bound to the current transaction.
	VehicleRepository() VehicleRepository

	// RouteRepository returns a RouteRepository instance bound to the current transaction.
	RouteRepository() RouteRepository

	// IncidentRepository returns an IncidentRepository instance bound to the current transaction.
	IncidentRepository() IncidentRepository

	// InvoiceRepository returns an InvoiceRepository instance bound to the current transaction.
	InvoiceRepository() InvoiceRepository
}
