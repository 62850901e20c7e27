package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// NotificationSender delivers customer-facing notifications. Calls are
// fire-and-forget from the workflow's point of view: a delivery failure is
// reported but must never abort the use case that triggered it.
type NotificationSender interface {
	// SendOrderConfirmation notifies the customer their order was placed.
	SendOrderConfirmation(ctx context.Context, email kernel.Email, orderNumber string, total kernel.Money) error

	// SendShipmentNotification notifies the customer their order shipped.
	SendShipmentNotification(ctx context.Context, email kernel.Email, orderNumber string, trackingNumber string, carrier string) error
}
