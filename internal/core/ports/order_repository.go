package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by their
// identifier, order number, and owning customer.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNumber retrieves an order by its human-facing order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	// GetByCustomer retrieves all orders belonging to a customer,
	// newest first.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
