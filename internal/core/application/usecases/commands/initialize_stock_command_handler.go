package commands

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
)

// InitializeStockCommandHandler handles the business logic for starting stock
// tracking on a catalog product.
type InitializeStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewInitializeStockCommandHandler creates a handler for stock initialization.
func NewInitializeStockCommandHandler(uowFactory StockUoWFactory) InitializeStockCommandHandler {
	return InitializeStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock initialization command. The tracked product must
// exist in the catalog; the opening quantity is recorded in the movement
// ledger.
func (h *InitializeStockCommandHandler) Handle(ctx context.Context, cmd InitializeStockCommand) error {
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

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	initialQuantity, err := kernel.NewQuantity(cmd.InitialQuantity())
	if err != nil {
		return err
	}

	threshold := cmd.ReorderThreshold()
	if threshold < 0 {
		threshold = inventory.DefaultReorderThreshold
	}
	reorderThreshold, err := kernel.NewQuantity(threshold)
	if err != nil {
		return err
	}

	aggregate, err := inventory.NewInventory(
		cmd.InventoryID(), cmd.ProductID(), initialQuantity, reorderThreshold)
	if err != nil {
		return err
	}

	if err := uow.InventoryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
