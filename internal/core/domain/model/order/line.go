package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when validating a zero-value OrderLine.
var ErrOrderLineIsNotConstructed = errors.New(
	"OrderLine must be created via NewOrderLine constructor")

// OrderLine is an immutable snapshot of one ordered product: name and unit
// price are captured at order-creation time and never re-derived from the
// live product, so the customer keeps the price they saw. The line total is
// always unitPrice multiplied by quantity.
type OrderLine struct { //nolint:recvcheck //using for validation
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	quantity    kernel.Quantity
	unitPrice   kernel.Money
	lineTotal   kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderLine creates a line snapshot for the given product. The line
// total is computed from the unit price and quantity.
func NewOrderLine(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) (OrderLine, error) {
	line := OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductID(productID),
		line.setProductName(productName),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return OrderLine{}, err
	}

	lineTotal, err := unitPrice.Multiply(quantity.Value())
	if err != nil {
		return OrderLine{}, err
	}
	line.lineTotal = lineTotal

	return line, nil
}

// ID returns the line's unique identifier.
func (l OrderLine) ID() kernel.UUID {
	return l.id
}

// ProductID returns the identifier of the ordered product.
func (l OrderLine) ProductID() kernel.UUID {
	return l.productID
}

// ProductName returns the product name captured at order time.
func (l OrderLine) ProductName() string {
	return l.productName
}

// Quantity returns the ordered quantity.
func (l OrderLine) Quantity() kernel.Quantity {
	return l.quantity
}

// UnitPrice returns the unit price captured at order time.
func (l OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// LineTotal returns unitPrice multiplied by quantity.
func (l OrderLine) LineTotal() kernel.Money {
	return l.lineTotal
}

// Validate checks the line was created via NewOrderLine.
func (l OrderLine) Validate() error {
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

func (l *OrderLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderLine) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *OrderLine) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	l.productName = productName
	return nil
}

func (l *OrderLine) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.Value() == 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("order line quantity must be greater than 0"))
	}
	l.quantity = quantity
	return nil
}

func (l *OrderLine) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			errors.New("unit price must be positive"))
	}
	l.unitPrice = unitPrice
	return nil
}
