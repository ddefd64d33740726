package vehiclerepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database model for a vehicle.
type VehicleDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Registration   string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Class          string          `gorm:"type:varchar(16);not null"`
	CapacityWeight decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	CapacityVolume decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	State          string          `gorm:"type:varchar(32);not null"`
}

// TableName returns the database table name for vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a domain vehicle to a DTO.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:             aggregate.ID().Bytes(),
		Registration:   aggregate.Registration(),
		Class:          aggregate.Class().String(),
		CapacityWeight: aggregate.CapacityWeight(),
		CapacityVolume: aggregate.CapacityVolume(),
		State:          aggregate.State(),
	}
}

// toDomain converts a DTO to a domain vehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	class, err := vehicle.ClassFromString(dto.Class)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Registration, class, dto.CapacityWeight, dto.CapacityVolume, dto.State)
}
