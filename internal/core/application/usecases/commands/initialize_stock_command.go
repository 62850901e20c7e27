package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrInitializeStockCommandIsNotConstructed = errors.New(
		"InitializeStockCommand must be created via NewInitializeStockCommand constructor",
	)
	ErrInitialQuantityIsInvalid  = errors.New("initial quantity must not be negative")
	ErrReorderThresholdIsInvalid = errors.New("reorder threshold must not be negative")
)

// InitializeStockCommand represents a request to start tracking stock for a
// catalog product.
type InitializeStockCommand struct { //nolint:recvcheck //using for validation
	inventoryID      kernel.UUID
	productID        kernel.UUID
	initialQuantity  int
	reorderThreshold int

	guard guard.ConstructorGuard
}

// NewInitializeStockCommand creates a command to initialize inventory for a
// product. A negative reorderThreshold selects the default threshold.
func NewInitializeStockCommand(
	inventoryID kernel.UUID,
	productID kernel.UUID,
	initialQuantity int,
	reorderThreshold int,
) (InitializeStockCommand, error) {
	command := InitializeStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setInventoryID(inventoryID),
		command.setProductID(productID),
		command.setInitialQuantity(initialQuantity),
	); err != nil {
		return InitializeStockCommand{}, err
	}

	command.reorderThreshold = reorderThreshold
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InitializeStockCommand) Validate() error {
	return c.guard.Validate(ErrInitializeStockCommandIsNotConstructed)
}

// InventoryID returns the new inventory record's unique identifier.
func (c InitializeStockCommand) InventoryID() kernel.UUID {
	return c.inventoryID
}

// ProductID returns the tracked product's identifier.
func (c InitializeStockCommand) ProductID() kernel.UUID {
	return c.productID
}

// InitialQuantity returns the opening stock level.
func (c InitializeStockCommand) InitialQuantity() int {
	return c.initialQuantity
}

// ReorderThreshold returns the requested threshold, negative when the caller
// wants the default.
func (c InitializeStockCommand) ReorderThreshold() int {
	return c.reorderThreshold
}

func (c *InitializeStockCommand) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}

	c.inventoryID = inventoryID
	return nil
}

func (c *InitializeStockCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *InitializeStockCommand) setInitialQuantity(initialQuantity int) error {
	if initialQuantity < 0 {
		return ErrInitialQuantityIsInvalid
	}

	c.initialQuantity = initialQuantity
	return nil
}
