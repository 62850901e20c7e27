// Package inventoryrepo provides data transfer objects and mapping functions for
// inventory persistence. This package implements the repository pattern for the
// inventory domain aggregate, handling the conversion between domain entities
// and database representations.
package inventoryrepo

import (
	"time"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryDTO represents the database structure for persisting inventory aggregates.
// One row per product; the movement history lives in its own append-only table.
type InventoryDTO struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex"`
	QuantityOnHand   int                `gorm:"type:int;not null"`
	ReservedQuantity int                `gorm:"type:int;not null"`
	ReorderThreshold int                `gorm:"type:int;not null"`
	Movements        []StockMovementDTO `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for inventory entities.
// Overrides GORM's default naming convention to use "inventories".
func (InventoryDTO) TableName() string {
	return "inventories"
}

// StockMovementDTO represents one audit entry in the movement history.
// Rows are insert-only; existing entries are never modified.
type StockMovementDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	InventoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	MovementType int       `gorm:"type:int;not null"`
	Quantity     int       `gorm:"type:int;not null"`
	Reason       string    `gorm:"type:varchar(255);not null"`
	OccurredAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for stock movement entities.
// Overrides GORM's default naming convention to use "stock_movements".
func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

// fromDomain converts an inventory domain aggregate to its database representation.
func fromDomain(aggregate *inventory.Inventory) InventoryDTO {
	inventoryID := aggregate.ID().Bytes()

	movements := make([]StockMovementDTO, 0, len(aggregate.Movements()))
	for _, movement := range aggregate.Movements() {
		movements = append(movements, StockMovementDTO{
			ID:           movement.ID().Bytes(),
			InventoryID:  inventoryID,
			MovementType: int(movement.Type()),
			Quantity:     movement.Quantity().Value(),
			Reason:       movement.Reason(),
			OccurredAt:   movement.OccurredAt(),
		})
	}

	return InventoryDTO{
		ID:               inventoryID,
		ProductID:        aggregate.ProductID().Bytes(),
		QuantityOnHand:   aggregate.QuantityOnHand().Value(),
		ReservedQuantity: aggregate.ReservedQuantity().Value(),
		ReorderThreshold: aggregate.ReorderThreshold().Value(),
		Movements:        movements,
	}
}

// toDomain converts a database DTO to an inventory domain aggregate.
// Reconstructs the complete aggregate including movement history using RestoreInventory.
func toDomain(dto InventoryDTO) (*inventory.Inventory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	quantityOnHand, err := kernel.NewQuantity(dto.QuantityOnHand)
	if err != nil {
		return nil, err
	}

	reservedQuantity, err := kernel.NewQuantity(dto.ReservedQuantity)
	if err != nil {
		return nil, err
	}

	reorderThreshold, err := kernel.NewQuantity(dto.ReorderThreshold)
	if err != nil {
		return nil, err
	}

	movements := make([]inventory.StockMovement, 0, len(dto.Movements))
	for _, movementDTO := range dto.Movements {
		movement, movementErr := movementToDomain(movementDTO)
		if movementErr != nil {
			return nil, movementErr
		}
		movements = append(movements, movement)
	}

	return inventory.RestoreInventory(
		id,
		productID,
		quantityOnHand,
		reservedQuantity,
		reorderThreshold,
		movements,
	)
}

// movementToDomain converts a stock movement DTO to the domain value object.
func movementToDomain(dto StockMovementDTO) (inventory.StockMovement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return inventory.StockMovement{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return inventory.StockMovement{}, err
	}

	return inventory.RestoreStockMovement(
		id,
		inventory.MovementType(dto.MovementType),
		quantity,
		dto.Reason,
		dto.OccurredAt,
	)
}
