package ports

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory
// aggregates and their movement ledgers.
type InventoryRepository interface {
	// Add persists a new inventory record to storage.
	Add(ctx context.Context, aggregate *inventory.Inventory) error

	// Update persists changes to an existing inventory record together
	// with any newly appended stock movements.
	Update(ctx context.Context, aggregate *inventory.Inventory) error

	// Get retrieves an inventory record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Inventory, error)

	// GetByProductID retrieves the inventory record tracking a product.
	// Inside a transaction the row is locked for update so concurrent
	// reservations against the same product serialize.
	GetByProductID(ctx context.Context, productID kernel.UUID) (*inventory.Inventory, error)
}
