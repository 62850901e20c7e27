package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// ShipOrderCommandHandler handles the business logic for sending a pending
// shipment on its way. Consumes on-hand stock for every order line, then
// transitions the shipment to InTransit and the order to Shipped, and
// triggers a shipment notification.
type ShipOrderCommandHandler struct {
	uowFactory ShippingUoWFactory
	notifier   ports.NotificationSender
	logger     *slog.Logger
}

// NewShipOrderCommandHandler creates a handler for shipping orders.
func NewShipOrderCommandHandler(
	uowFactory ShippingUoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "ShipOrderCommandHandler"),
	}
}

// Handle processes the ship command. Stock consumption persists in the same
// transaction ahead of the shipment and order updates, and the notification
// goes out only after the commit; a notification failure is logged, never
// propagated.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	parcel, err := uow.ShipmentRepository().GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}
	if err := parcel.Ship(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, parcel.OrderID())
	if err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	for _, line := range aggregate.Lines() {
		stock, err := inventoryRepo.GetByProductID(ctx, line.ProductID())
		if err != nil {
			return err
		}
		if err := stock.Ship(line.Quantity()); err != nil {
			return err
		}
		if err := inventoryRepo.Update(ctx, stock); err != nil {
			return err
		}
	}

	if err := uow.ShipmentRepository().Update(ctx, parcel); err != nil {
		return err
	}

	if err := aggregate.MarkShipped(); err != nil {
		return err
	}
	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	buyer, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.notifier.SendShipmentNotification(
		ctx, buyer.Email(), aggregate.OrderNumber(),
		parcel.TrackingNumber(), parcel.Carrier()); err != nil {
		h.logger.Warn("shipment notification failed",
			"trackingNumber", parcel.TrackingNumber(), "error", err)
	}

	return nil
}
