// Package gateway provides a simulated payment processor. The simulator is
// deterministic: outcomes depend only on the request, never on randomness,
// so workflows behave identically across runs and environments.
package gateway

import (
	"context"
	"log/slog"
	"strings"

	"storefront/internal/core/domain/model/kernel"
)

// DefaultDeclinePrefix declines any payment method starting with this prefix.
// "DECLINE" as a method (or "DECLINE:visa" and the like) simulates a refused
// authorization without touching real processor credentials.
const DefaultDeclinePrefix = "DECLINE"

// SimulatedPaymentGateway approves every operation except those whose payment
// method matches the configured decline prefix. Capture and refund succeed for
// any positive amount.
type SimulatedPaymentGateway struct {
	declinePrefix string
	logger        *slog.Logger
}

// NewSimulatedPaymentGateway creates a gateway simulator. An empty prefix
// falls back to DefaultDeclinePrefix.
func NewSimulatedPaymentGateway(declinePrefix string, logger *slog.Logger) *SimulatedPaymentGateway {
	if declinePrefix == "" {
		declinePrefix = DefaultDeclinePrefix
	}

	return &SimulatedPaymentGateway{
		declinePrefix: declinePrefix,
		logger:        logger.With("component", "payment_gateway"),
	}
}

// Authorize approves the charge unless the payment method carries the decline
// prefix or the amount is not positive.
func (g *SimulatedPaymentGateway) Authorize(
	ctx context.Context,
	paymentReference string,
	amount kernel.Money,
	paymentMethod string,
) (bool, error) {
	if !amount.IsPositive() {
		g.logger.InfoContext(ctx, "authorization declined",
			"payment_reference", paymentReference,
			"reason", "non-positive amount")
		return false, nil
	}

	if strings.HasPrefix(strings.ToUpper(paymentMethod), g.declinePrefix) {
		g.logger.InfoContext(ctx, "authorization declined",
			"payment_reference", paymentReference,
			"payment_method", paymentMethod)
		return false, nil
	}

	g.logger.InfoContext(ctx, "authorization approved",
		"payment_reference", paymentReference,
		"amount", amount.String())
	return true, nil
}

// Capture approves collection of previously authorized funds.
func (g *SimulatedPaymentGateway) Capture(
	ctx context.Context,
	paymentReference string,
	amount kernel.Money,
) (bool, error) {
	if !amount.IsPositive() {
		g.logger.InfoContext(ctx, "capture declined",
			"payment_reference", paymentReference,
			"reason", "non-positive amount")
		return false, nil
	}

	g.logger.InfoContext(ctx, "capture approved",
		"payment_reference", paymentReference,
		"amount", amount.String())
	return true, nil
}

// Refund approves returning captured funds.
func (g *SimulatedPaymentGateway) Refund(
	ctx context.Context,
	paymentReference string,
	amount kernel.Money,
) (bool, error) {
	if !amount.IsPositive() {
		g.logger.InfoContext(ctx, "refund declined",
			"payment_reference", paymentReference,
			"reason", "non-positive amount")
		return false, nil
	}

	g.logger.InfoContext(ctx, "refund approved",
		"payment_reference", paymentReference,
		"amount", amount.String())
	return true, nil
}
