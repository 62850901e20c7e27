package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing a draft
// order. Resolves the shipping address, transitions the order to Placed, and
// triggers an order-confirmation notification.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "PlaceOrderCommandHandler"),
	}
}

// Handle processes the placement command. The confirmation notification is
// sent after the commit; a notification failure is logged, never propagated.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	buyer, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	shippingAddress := cmd.ShippingAddress()
	if shippingAddress == nil {
		shippingAddress = buyer.Address()
	}
	if shippingAddress == nil {
		return ErrShippingAddressIsRequired
	}

	if err := aggregate.Place(*shippingAddress); err != nil {
		return err
	}
	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.notifier.SendOrderConfirmation(
		ctx, buyer.Email(), aggregate.OrderNumber(), aggregate.Total()); err != nil {
		h.logger.Warn("order confirmation failed",
			"orderNumber", aggregate.OrderNumber(), "error", err)
	}

	return nil
}
