package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// PaymentGateway is the external payment processor. Each call returns whether
// the processor approved the operation; a false answer is a decline, not an
// error. Errors are reserved for transport failures.
type PaymentGateway interface {
	// Authorize asks the processor to approve a charge.
	Authorize(ctx context.Context, paymentReference string, amount kernel.Money, paymentMethod string) (bool, error)

	// Capture asks the processor to collect previously authorized funds.
	Capture(ctx context.Context, paymentReference string, amount kernel.Money) (bool, error)

	// Refund asks the processor to return captured funds.
	Refund(ctx context.Context, paymentReference string, amount kernel.Money) (bool, error)
}
