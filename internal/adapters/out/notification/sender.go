// Package notification provides a log-backed implementation of the
// NotificationSender port. Messages are written to structured logs instead
// of an email provider; swapping in a real sender only touches this package.
package notification

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
)

// LogNotificationSender records every customer notification as a structured
// log entry.
type LogNotificationSender struct {
	logger *slog.Logger
}

// NewLogNotificationSender creates a sender writing to the given logger.
func NewLogNotificationSender(logger *slog.Logger) *LogNotificationSender {
	return &LogNotificationSender{
		logger: logger.With("component", "notification"),
	}
}

// SendOrderConfirmation logs the order confirmation message.
func (s *LogNotificationSender) SendOrderConfirmation(
	ctx context.Context,
	email kernel.Email,
	orderNumber string,
	total kernel.Money,
) error {
	s.logger.InfoContext(ctx, "order confirmation sent",
		"email", email.Value(),
		"order_number", orderNumber,
		"total", total.String(),
	)
	return nil
}

// SendShipmentNotification logs the shipment notification message.
func (s *LogNotificationSender) SendShipmentNotification(
	ctx context.Context,
	email kernel.Email,
	orderNumber string,
	trackingNumber string,
	carrier string,
) error {
	s.logger.InfoContext(ctx, "shipment notification sent",
		"email", email.Value(),
		"order_number", orderNumber,
		"tracking_number", trackingNumber,
		"carrier", carrier,
	)
	return nil
}
