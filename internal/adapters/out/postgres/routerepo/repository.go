package routerepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route and its shipment set to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
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

// Update saves an existing route, replacing the stored shipment set with
// the aggregate's.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Where("id = ?", dto.ID).
		Select("date", "vehicle_id", "driver_id", "status").
		Updates(&RouteDTO{
			Date:      dto.Date,
			VehicleID: dto.VehicleID,
			DriverID:  dto.DriverID,
			Status:    dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("route_id = ?", dto.ID).
		Delete(&RouteShipmentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Shipments) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Shipments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route by ID with its shipment set.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).
		Preload("Shipments").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByShipmentID retrieves the not-closed routes carrying the shipment.
func (r *GormRouteRepository) GetOpenByShipmentID(ctx context.Context, shipmentID kernel.UUID) ([]*route.Route, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	if err := r.db.WithContext(ctx).
		Preload("Shipments").
		Where("status <> ?", route.StatusClosed.String()).
		Where("id IN (?)", r.db.
			Model(&RouteShipmentDTO{}).
			Select("route_id").
			Where("shipment_id = ?", shipmentID.Bytes()),
		).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, aggregate)
	}

	return routes, nil
}
