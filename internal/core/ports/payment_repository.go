package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment attempt to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByReference retrieves a payment by its reference code.
	GetByReference(ctx context.Context, paymentReference string) (*payment.Payment, error)

	// GetByOrder retrieves all payment attempts for an order, newest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)
}
