package routerepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteDTO represents the database model for a route.
type RouteDTO struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Date      time.Time          `gorm:"not null;index"`
	VehicleID uuid.UUID          `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status    string             `gorm:"type:varchar(16);not null;index"`
	Shipments []RouteShipmentDTO `gorm:"foreignKey:RouteID;references:ID"`
}

// TableName returns the database table name for routes.
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteShipmentDTO represents a shipment attached to a route.
type RouteShipmentDTO struct {
	RouteID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the database table name for route shipments.
func (RouteShipmentDTO) TableName() string {
	return "route_shipments"
}

// fromDomain converts a domain route to a DTO.
func fromDomain(aggregate *route.Route) RouteDTO {
	shipmentIDs := aggregate.ShipmentIDs()
	shipments := make([]RouteShipmentDTO, 0, len(shipmentIDs))
	for _, shipmentID := range shipmentIDs {
		shipments = append(shipments, RouteShipmentDTO{
			RouteID:    aggregate.ID().Bytes(),
			ShipmentID: shipmentID.Bytes(),
		})
	}

	return RouteDTO{
		ID:        aggregate.ID().Bytes(),
		Date:      aggregate.Date(),
		VehicleID: aggregate.VehicleID().Bytes(),
		DriverID:  aggregate.DriverID().Bytes(),
		Status:    aggregate.Status().String(),
		Shipments: shipments,
	}
}

// toDomain converts a DTO to a domain route.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	status, err := route.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	shipmentIDs := make([]kernel.UUID, 0, len(dto.Shipments))
	for _, shipment := range dto.Shipments {
		shipmentID, err := kernel.UUIDFromBytes(shipment.ShipmentID[:])
		if err != nil {
			return nil, err
		}
		shipmentIDs = append(shipmentIDs, shipmentID)
	}

	return route.RestoreRoute(id, dto.Date, vehicleID, driverID, status, shipmentIDs)
}
