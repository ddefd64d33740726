package incidentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/incident"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIncidentRepository implements IncidentRepository using GORM.
type GormIncidentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIncidentRepository creates a new GORM incident repository.
func NewGormIncidentRepository(db *gorm.DB, tracker aggregateTracker) *GormIncidentRepository {
	return &GormIncidentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new incident to the database.
func (r *GormIncidentRepository) Add(ctx context.Context, aggregate *incident.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing incident to the database.
func (r *GormIncidentRepository) Update(ctx context.Context, aggregate *incident.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Where("id = ?", dto.ID).
		Select("shipment_id", "kind", "description", "state", "resolution", "resolved_at", "wilaya", "commune").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("incident", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// DeleteByShipmentID removes all incidents reported against a shipment.
// A shipment without incidents deletes nothing and succeeds.
func (r *GormIncidentRepository) DeleteByShipmentID(ctx context.Context, shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&IncidentDTO{}, "shipment_id = ?", shipmentID.Bytes()).Error
}

// Get retrieves an incident by ID.
func (r *GormIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*incident.Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IncidentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("incident", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
