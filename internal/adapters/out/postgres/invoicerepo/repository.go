package invoicerepo

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/billing"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new invoice with its links and payments to the database.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *billing.Invoice) error {
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

// Update saves an existing invoice, reconciling stored links and payments
// with the aggregate's.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *billing.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Where("id = ?", dto.ID).
		Select("customer_id", "total", "paid", "issued_at", "remarks").
		Updates(&InvoiceDTO{
			CustomerID: dto.CustomerID,
			Total:      dto.Total,
			Paid:       dto.Paid,
			IssuedAt:   dto.IssuedAt,
			Remarks:    dto.Remarks,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", dto.ID).
		Delete(&InvoiceLinkDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Links) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Links).Error; err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", dto.ID).
		Delete(&PaymentDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Payments) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Payments).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID with its links and payments.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).
		Preload("Links").
		Preload("Payments").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := r.checkOrphanPayments(ctx, id); err != nil {
				return nil, err
			}
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// checkOrphanPayments surfaces payment rows pointing at a missing invoice.
// Such rows mean a delete bypassed the payment guard; they are reported,
// never repaired.
func (r *GormInvoiceRepository) checkOrphanPayments(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("invoice_id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewFatalInconsistencyError(
			fmt.Sprintf("%d payment(s) reference missing invoice %s", count, id),
		)
	}
	return nil
}

// Delete removes an invoice and its shipment links.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", id.Bytes()).
		Delete(&InvoiceLinkDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&InvoiceDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice", id.String())
	}

	return nil
}

// IsShipmentLinked reports whether the shipment is billed on any invoice.
func (r *GormInvoiceRepository) IsShipmentLinked(ctx context.Context, shipmentID kernel.UUID) (bool, error) {
	if err := shipmentID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&InvoiceLinkDTO{}).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
