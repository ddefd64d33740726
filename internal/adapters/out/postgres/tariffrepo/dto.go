// Package tariffrepo provides data transfer objects and mapping
// functions for tariff and destination persistence.
package tariffrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DestinationDTO represents the database structure for destinations.
type DestinationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	City    string    `gorm:"type:varchar(128)"`
	Country string    `gorm:"type:varchar(128)"`
	Zone    string    `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for destination entities.
func (DestinationDTO) TableName() string {
	return "destinations"
}

// TariffDTO represents the database structure for tariffs. The zone
// column duplicates the destination's zone, so route validation reads
// one row instead of joining.
type TariffDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ServiceClass  string          `gorm:"type:varchar(32)"`
	Base          decimal.Decimal `gorm:"type:numeric(14,2)"`
	PerWeight     decimal.Decimal `gorm:"type:numeric(14,2)"`
	PerVolume     decimal.Decimal `gorm:"type:numeric(14,2)"`
	DestinationID uuid.UUID       `gorm:"type:uuid;index"`
	Zone          string          `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for tariff entities.
func (TariffDTO) TableName() string {
	return "tariffs"
}

func destinationFromDomain(destination *tariff.Destination) DestinationDTO {
	return DestinationDTO{
		ID:      destination.ID().Bytes(),
		City:    destination.City(),
		Country: destination.Country(),
		Zone:    destination.Zone().String(),
	}
}

func destinationToDomain(dto DestinationDTO) (*tariff.Destination, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	zone, err := kernel.ZoneFromString(dto.Zone)
	if err != nil {
		return nil, err
	}

	return tariff.RestoreDestination(id, dto.City, dto.Country, zone)
}

func fromDomain(aggregate *tariff.Tariff) TariffDTO {
	return TariffDTO{
		ID:            aggregate.ID().Bytes(),
		ServiceClass:  aggregate.ServiceClass().String(),
		Base:          aggregate.Base(),
		PerWeight:     aggregate.PerWeight(),
		PerVolume:     aggregate.PerVolume(),
		DestinationID: aggregate.DestinationID().Bytes(),
		Zone:          aggregate.Zone().String(),
	}
}

func toDomain(dto TariffDTO) (*tariff.Tariff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	destinationID, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}

	serviceClass, err := tariff.ServiceClassFromString(dto.ServiceClass)
	if err != nil {
		return nil, err
	}

	zone, err := kernel.ZoneFromString(dto.Zone)
	if err != nil {
		return nil, err
	}

	return tariff.RestoreTariff(id, serviceClass, dto.Base, dto.PerWeight, dto.PerVolume, destinationID, zone)
}
