// Package shipmentrepo provides data transfer objects and mapping
// functions for shipment persistence. It implements the repository
// pattern for the shipment aggregate, converting between the domain
// entity and its database representation.
package shipmentrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Dimensions and the estimate are exact numerics; money and
// weights never travel through floats. The estimate column is null
// exactly when no tariff is referenced.
type ShipmentDTO struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Weight     decimal.Decimal     `gorm:"type:numeric(12,3)"`
	Volume     decimal.Decimal     `gorm:"type:numeric(12,3)"`
	Status     string              `gorm:"type:varchar(32);index"`
	TariffID   *uuid.UUID          `gorm:"type:uuid;index"`
	CustomerID *uuid.UUID          `gorm:"type:uuid;index"`
	Estimate   decimal.NullDecimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:     aggregate.ID().Bytes(),
		Weight: aggregate.Weight(),
		Volume: aggregate.Volume(),
		Status: aggregate.Status().String(),
	}

	if id := aggregate.TariffID(); id != nil {
		raw := id.Bytes()
		dto.TariffID = &raw
	}
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		dto.CustomerID = &raw
	}
	if estimate := aggregate.Estimate(); estimate != nil {
		dto.Estimate = decimal.NewNullDecimal(*estimate)
	}

	return dto
}

// toDomain converts a database DTO to a shipment aggregate, restoring the
// persisted status, references and estimate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var tariffID *kernel.UUID
	if dto.TariffID != nil {
		tID, tariffErr := kernel.UUIDFromBytes((*dto.TariffID)[:])
		if tariffErr != nil {
			return nil, tariffErr
		}
		tariffID = &tID
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	var estimate *decimal.Decimal
	if dto.Estimate.Valid {
		estimate = &dto.Estimate.Decimal
	}

	return shipment.RestoreShipment(id, dto.Weight, dto.Volume, status, tariffID, customerID, estimate)
}
