package incidentrepo

import (
	"time"

	"github.com/google/uuid"

	"logistics/internal/core/domain/model/incident"
	"logistics/internal/core/domain/model/kernel"
)

// IncidentDTO represents the database model for an incident.
type IncidentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind        string     `gorm:"type:varchar(32);not null"`
	Description string     `gorm:"type:text;not null"`
	State       string     `gorm:"type:varchar(16);not null;index"`
	Resolution  *string    `gorm:"type:text"`
	ResolvedAt  *time.Time `gorm:""`
	Wilaya      string     `gorm:"type:varchar(64)"`
	Commune     string     `gorm:"type:varchar(64)"`
}

// TableName returns the database table name for incidents.
func (IncidentDTO) TableName() string {
	return "incidents"
}

// fromDomain converts a domain incident to a DTO.
func fromDomain(aggregate *incident.Incident) IncidentDTO {
	return IncidentDTO{
		ID:          aggregate.ID().Bytes(),
		ShipmentID:  aggregate.ShipmentID().Bytes(),
		Kind:        aggregate.Kind().String(),
		Description: aggregate.Description(),
		State:       aggregate.State().String(),
		Resolution:  aggregate.Resolution(),
		ResolvedAt:  aggregate.ResolvedAt(),
		Wilaya:      aggregate.Wilaya(),
		Commune:     aggregate.Commune(),
	}
}

// toDomain converts a DTO to a domain incident.
func toDomain(dto IncidentDTO) (*incident.Incident, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	kind, err := incident.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	state, err := incident.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	return incident.RestoreIncident(
		id, shipmentID, kind, dto.Description, state,
		dto.Resolution, dto.ResolvedAt, dto.Wilaya, dto.Commune,
	)
}
