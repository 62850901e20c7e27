package product

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when validating a zero-value Product.
var ErrProductIsNotConstructed = errors.New(
	"Product must be created via NewProduct constructor")

// Product is a catalog entry. Orders snapshot its name and price at creation
// time, so price updates and deactivation never affect existing orders.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	sku         string
	category    string
	active      bool

	isConstructed bool
}

// NewProduct creates an active catalog entry.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	sku string,
	category string,
) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, errs.NewValueIsInvalidError("price")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if strings.TrimSpace(category) == "" {
		return nil, errs.NewValueIsRequiredError("category")
	}

	return &Product{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		sku:           sku,
		category:      category,
		active:        true,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a catalog entry from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	sku string,
	category string,
	active bool,
) (*Product, error) {
	product, err := NewProduct(id, name, description, price, sku, category)
	if err != nil {
		return nil, err
	}

	product.active = active
	return product, nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the catalog description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current selling price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// SKU returns the stock keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// Category returns the catalog category.
func (p *Product) Category() string {
	return p.category
}

// IsActive reports whether the product can be ordered.
func (p *Product) IsActive() bool {
	return p.active
}

// UpdatePrice replaces the selling price. Existing orders keep the price they
// captured when they were created.
func (p *Product) UpdatePrice(newPrice kernel.Money) error {
	if err := newPrice.Validate(); err != nil {
		return err
	}
	if !newPrice.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}

	p.price = newPrice
	return nil
}

// Deactivate withdraws the product from sale.
func (p *Product) Deactivate() {
	p.active = false
}

// Validate checks the product was created via a constructor.
func (p *Product) Validate() error {
	if !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}
