package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ErrSKUAlreadyExists is returned when a catalog SKU is taken.
var ErrSKUAlreadyExists = errors.New("sku already exists")

// AddProductCommandHandler handles the business logic for adding catalog
// products, enforcing SKU uniqueness.
type AddProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductCommandHandler creates a handler for catalog additions.
func NewAddProductCommandHandler(uowFactory ProductUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add product command.
func (h *AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
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

	productRepo := uow.ProductRepository()
	existing, err := productRepo.GetBySKU(ctx, cmd.SKU())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return ErrSKUAlreadyExists
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Description(),
		cmd.Price(), cmd.SKU(), cmd.Category())
	if err != nil {
		return err
	}

	if err := productRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
