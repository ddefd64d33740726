package tariffrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/tariff"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB, tracker aggregateTracker) *GormTariffRepository {
	return &GormTariffRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddDestination saves a new destination to the database.
func (r *GormTariffRepository) AddDestination(ctx context.Context, destination *tariff.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	dto := destinationFromDomain(destination)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(destination.ID(), destination)
	return nil
}

// GetDestination retrieves a destination by ID.
func (r *GormTariffRepository) GetDestination(ctx context.Context, id kernel.UUID) (*tariff.Destination, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DestinationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("destination", id.String())
		}
		return nil, err
	}

	return destinationToDomain(dto)
}

// Add saves a new tariff to the database.
func (r *GormTariffRepository) Add(ctx context.Context, aggregate *tariff.Tariff) error {
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

// Get retrieves a tariff by ID.
func (r *GormTariffRepository) Get(ctx context.Context, id kernel.UUID) (*tariff.Tariff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TariffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tariff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
