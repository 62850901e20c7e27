package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrSKUIsRequired         = errors.New("sku is required")
	ErrCategoryIsRequired    = errors.New("category is required")
	ErrPriceIsInvalid        = errors.New("price must be greater than 0")
)

// AddProductCommand represents a request to add a product to the catalog.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	sku         string
	category    string

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a catalog product.
// Validates the identifier, name, positive price, SKU, and category.
func NewAddProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	sku string,
	category string,
) (AddProductCommand, error) {
	command := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPrice(price),
		command.setSKU(sku),
		command.setCategory(category),
	); err != nil {
		return AddProductCommand{}, err
	}

	command.description = description
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the new product's unique identifier.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product display name.
func (c AddProductCommand) Name() string {
	return c.name
}

// Description returns the catalog description.
func (c AddProductCommand) Description() string {
	return c.description
}

// Price returns the selling price.
func (c AddProductCommand) Price() kernel.Money {
	return c.price
}

// SKU returns the stock keeping unit code.
func (c AddProductCommand) SKU() string {
	return c.sku
}

// Category returns the catalog category.
func (c AddProductCommand) Category() string {
	return c.category
}

func (c *AddProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *AddProductCommand) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *AddProductCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}
