package driverrepo

import (
	"github.com/google/uuid"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverDTO represents the database model for a driver.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	LicenseNumber   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	LicenseCategory string    `gorm:"type:varchar(16);not null"`
	Available       bool      `gorm:"not null"`
}

// TableName returns the database table name for drivers.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a domain driver to a DTO.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		LicenseNumber:   aggregate.LicenseNumber(),
		LicenseCategory: aggregate.LicenseCategory().String(),
		Available:       aggregate.IsAvailable(),
	}
}

// toDomain converts a DTO to a domain driver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := driver.LicenseCategoryFromString(dto.LicenseCategory)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.LicenseNumber, category, dto.Available)
}
