package inventoryrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory record and its opening movement to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Inventory) error {
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

// Update saves the inventory counters and appends any new movements.
// Movement rows already present are left untouched; the history is
// insert-only.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InventoryDTO{}).
		Where("id = ?", dto.ID).
		Select("QuantityOnHand", "ReservedQuantity", "ReorderThreshold").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Movements) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Movements).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inventory record by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Inventory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("occurred_at")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByProductID retrieves the inventory record for a product. Inside a
// transaction the row is locked with SELECT FOR UPDATE so concurrent
// reservations for the same product serialize.
func (r *GormInventoryRepository) GetByProductID(
	ctx context.Context,
	productID kernel.UUID,
) (*inventory.Inventory, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("occurred_at")
		}).
		First(&dto, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
