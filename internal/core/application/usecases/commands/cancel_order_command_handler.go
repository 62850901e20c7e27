package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles the business logic for order cancellation.
// Gives every line's stock reservation back, then transitions the order to
// Cancelled.
type CancelOrderCommandHandler struct {
	uowFactory CancellationUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory CancellationUoWFactory,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CancelOrderCommandHandler"),
	}
}

// Handle processes the cancellation command. Lines release independently:
// a failure releasing one line's stock is logged and does not stop the
// releases for the remaining lines or the cancellation itself.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err := aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	h.releaseReservations(ctx, uow, aggregate.Lines())

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CancelOrderCommandHandler) releaseReservations(
	ctx context.Context, uow CancellationUoW, lines []order.OrderLine,
) {
	inventoryRepo := uow.InventoryRepository()
	for _, line := range lines {
		stock, err := inventoryRepo.GetByProductID(ctx, line.ProductID())
		if err != nil {
			h.logger.Error("reservation release failed",
				"productID", line.ProductID().String(), "error", err)
			continue
		}
		if err := stock.Release(line.Quantity()); err != nil {
			h.logger.Error("reservation release failed",
				"productID", line.ProductID().String(), "error", err)
			continue
		}
		if err := inventoryRepo.Update(ctx, stock); err != nil {
			h.logger.Error("reservation release failed",
				"productID", line.ProductID().String(), "error", err)
		}
	}
}
