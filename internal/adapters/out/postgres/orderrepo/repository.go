package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/order"
	"opsconsole/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderNumber", dto.OrderNumber, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing order, guarded on the status the caller last
// observed. The status predicate makes the write a compare-and-swap: when a
// concurrent transaction moved the order on first, no row matches and the
// stale write surfaces as ErrOrderStateConflict. Line items are immutable
// after creation and are not written here.
func (r *GormOrderRepository) Update(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]interface{}{
			"customer_name":     dto.Customer.Name,
			"customer_email":    dto.Customer.Email,
			"customer_phone":    dto.Customer.Phone,
			"shipping_street":   dto.Shipping.Street,
			"shipping_city":     dto.Shipping.City,
			"shipping_state":    dto.Shipping.State,
			"shipping_zip_code": dto.Shipping.ZipCode,
			"shipping_country":  dto.Shipping.Country,
			"status":            dto.Status,
			"notes":             dto.Notes,
			"updated_at":        dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.reportUpdateConflict(ctx, dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// reportUpdateConflict distinguishes "order gone" from "status moved".
func (r *GormOrderRepository) reportUpdateConflict(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderID", id)
	}
	return errs.ErrOrderStateConflict
}

// Get retrieves an order with its items by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.TokenID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByOrderNumber reports whether the human-facing number is taken.
func (r *GormOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("order_number = ?", orderNumber).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeletePending removes a pending order and its items.
// The status predicate on the delete re-checks "still pending" atomically;
// items go first so a failed order delete leaves nothing half-removed once
// the surrounding transaction rolls back.
func (r *GormOrderRepository) DeletePending(ctx context.Context, id kernel.TokenID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id.String()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id.String(), int(order.Pending)).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.reportUpdateConflict(ctx, id.String())
	}

	return nil
}
