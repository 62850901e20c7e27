package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

var (
	// ErrProductIsNotActive is returned when ordering a withdrawn product.
	ErrProductIsNotActive = errors.New("product is not active")

	// ErrShippingAddressIsRequired is returned when neither the command nor
	// the customer profile carries a delivery address.
	ErrShippingAddressIsRequired = errors.New("shipping address is required")
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Captures product names and prices from the catalog, reserves stock for
// every line, and persists the order in Placed status.
//
// Each line's reservation commits in its own unit of work. When a later line
// cannot be reserved, the already-committed reservations are compensated by
// releasing them one by one before the error is returned.
type CreateOrderCommandHandler struct {
	checkoutUoWFactory CheckoutUoWFactory
	stockUoWFactory    StockUoWFactory
	notifier           ports.NotificationSender
	logger             *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	checkoutUoWFactory CheckoutUoWFactory,
	stockUoWFactory StockUoWFactory,
	notifier ports.NotificationSender,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		checkoutUoWFactory: checkoutUoWFactory,
		stockUoWFactory:    stockUoWFactory,
		notifier:           notifier,
		logger:             logger.With("component", "CreateOrderCommandHandler"),
	}
}

// Handle processes the order creation command.
//
// The workflow runs in three stages: read the customer and catalog to build
// the order, reserve stock line by line, then place and persist the order.
// Reservations are persisted before the order so a crash between the stages
// leaves stock consistent with what was reserved.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, shippingAddress, customerEmail, err := h.buildOrder(ctx, cmd)
	if err != nil {
		return err
	}

	reserved, err := h.reserveLines(ctx, aggregate.Lines())
	if err != nil {
		h.releaseLines(ctx, reserved)
		return err
	}

	if err := aggregate.Place(shippingAddress); err != nil {
		h.releaseLines(ctx, aggregate.Lines())
		return err
	}

	if err := h.persistOrder(ctx, aggregate); err != nil {
		h.releaseLines(ctx, aggregate.Lines())
		return err
	}

	if err := h.notifier.SendOrderConfirmation(
		ctx, customerEmail, aggregate.OrderNumber(), aggregate.Total()); err != nil {
		h.logger.Warn("order confirmation failed",
			"orderNumber", aggregate.OrderNumber(), "error", err)
	}

	return nil
}

func (h *CreateOrderCommandHandler) buildOrder(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, kernel.Address, kernel.Email, error) {
	uow := h.checkoutUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, kernel.Address{}, kernel.Email{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, kernel.Address{}, kernel.Email{}, err
	}

	shippingAddress := cmd.ShippingAddress()
	if shippingAddress == nil {
		shippingAddress = buyer.Address()
	}
	if shippingAddress == nil {
		return nil, kernel.Address{}, kernel.Email{}, ErrShippingAddressIsRequired
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), order.NewOrderNumber(), cmd.CustomerID(), cmd.Currency())
	if err != nil {
		return nil, kernel.Address{}, kernel.Email{}, err
	}

	productRepo := uow.ProductRepository()
	for _, requested := range cmd.Lines() {
		item, err := productRepo.Get(ctx, requested.ProductID)
		if err != nil {
			return nil, kernel.Address{}, kernel.Email{}, err
		}
		if !item.IsActive() {
			return nil, kernel.Address{}, kernel.Email{}, ErrProductIsNotActive
		}

		quantity, err := kernel.NewQuantity(requested.Quantity)
		if err != nil {
			return nil, kernel.Address{}, kernel.Email{}, err
		}

		line, err := order.NewOrderLine(
			kernel.NewUUID(), item.ID(), item.Name(), quantity, item.Price())
		if err != nil {
			return nil, kernel.Address{}, kernel.Email{}, err
		}
		if err := aggregate.AddLine(line); err != nil {
			return nil, kernel.Address{}, kernel.Email{}, err
		}
	}

	return aggregate, *shippingAddress, buyer.Email(), nil
}

// reserveLines commits one reservation per line and returns the lines whose
// reservations are already persisted when an error stops the loop.
func (h *CreateOrderCommandHandler) reserveLines(
	ctx context.Context, lines []order.OrderLine,
) ([]order.OrderLine, error) {
	reserved := make([]order.OrderLine, 0, len(lines))
	for _, line := range lines {
		if err := h.reserveLine(ctx, line); err != nil {
			return reserved, err
		}
		reserved = append(reserved, line)
	}
	return reserved, nil
}

func (h *CreateOrderCommandHandler) reserveLine(ctx context.Context, line order.OrderLine) error {
	uow := h.stockUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	stock, err := inventoryRepo.GetByProductID(ctx, line.ProductID())
	if err != nil {
		return err
	}
	if err := stock.Reserve(line.Quantity()); err != nil {
		return err
	}
	if err := inventoryRepo.Update(ctx, stock); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseLines compensates committed reservations. Releases are best-effort:
// a failed release is logged and the loop continues with the next line.
func (h *CreateOrderCommandHandler) releaseLines(ctx context.Context, lines []order.OrderLine) {
	for _, line := range lines {
		if err := h.releaseLine(ctx, line); err != nil {
			h.logger.Error("reservation release failed",
				"productID", line.ProductID().String(),
				"quantity", line.Quantity().Value(),
				"error", err)
		}
	}
}

func (h *CreateOrderCommandHandler) releaseLine(ctx context.Context, line order.OrderLine) error {
	uow := h.stockUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	stock, err := inventoryRepo.GetByProductID(ctx, line.ProductID())
	if err != nil {
		return err
	}
	if err := stock.Release(line.Quantity()); err != nil {
		return err
	}
	if err := inventoryRepo.Update(ctx, stock); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CreateOrderCommandHandler) persistOrder(ctx context.Context, aggregate *order.Order) error {
	uow := h.checkoutUoWFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
