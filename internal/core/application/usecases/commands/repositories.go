// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface covering the repositories
// it touches, so tests mock exactly what a command needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TariffRepoFactory provides access to the tariff repository within a transaction.
	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// IncidentRepoFactory provides access to the incident repository within a transaction.
	IncidentRepoFactory interface {
		IncidentRepository() ports.IncidentRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// ShipmentUoW manages transactions for shipment operations, which may
	// read tariffs for pricing, invoice links and route assignments for
	// deletion guards, and cascade incident removal on deletion.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		TariffRepoFactory
		InvoiceRepoFactory
		RouteRepoFactory
		IncidentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// RouteUoW manages transactions for route planning and lifecycle
	// operations. Route validation reads drivers, vehicles, shipments and
	// the tariffs behind them; auto-closure releases drivers.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
		DriverRepoFactory
		VehicleRepoFactory
		ShipmentRepoFactory
		TariffRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// IncidentUoW manages transactions for incident operations. Reporting
	// an incident flags the open routes carrying the shipment, and severe
	// incident resolution escalates into the shipment aggregate, all
	// within the same transaction.
	IncidentUoW interface {
		TxManager
		IncidentRepoFactory
		ShipmentRepoFactory
		RouteRepoFactory
	}

	// IncidentUoWFactory creates new incident unit of work instances.
	IncidentUoWFactory interface {
		Create() IncidentUoW
	}

	// InvoiceUoW manages transactions for billing operations, which read
	// shipments to source estimates for invoice totals.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
		ShipmentRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}
)
