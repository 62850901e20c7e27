package ports

import (
	"context"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
// The registration email is unique across all customers.
type CustomerRepository interface {
	// Add persists a new customer to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by their registration email.
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)

	// ExistsByEmail reports whether a customer is registered with the email.
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}
