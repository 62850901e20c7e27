package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// CreateOrderLine is one requested product and quantity in a new order.
type CreateOrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new order for a
// customer. Product names and prices are captured from the catalog at
// creation time, and stock is reserved for every line.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	currency        string
	lines           []CreateOrderLine
	shippingAddress *kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the identifiers, the currency, and that every line requests a
// positive quantity of a valid product. The shipping address is optional;
// when nil the customer's stored address is used at placement.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	currency string,
	lines []CreateOrderLine,
	shippingAddress *kernel.Address,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setCurrency(currency),
		command.setLines(lines),
		command.setShippingAddress(shippingAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the new order's unique identifier.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Currency returns the order currency.
func (c CreateOrderCommand) Currency() string {
	return c.currency
}

// Lines returns the requested products and quantities.
func (c CreateOrderCommand) Lines() []CreateOrderLine {
	return c.lines
}

// ShippingAddress returns the requested delivery address, nil when the
// customer's stored address should be used.
func (c CreateOrderCommand) ShippingAddress() *kernel.Address {
	return c.shippingAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency string) error {
	if currency == "" {
		return errors.New("currency is required")
	}

	c.currency = currency
	return nil
}

func (c *CreateOrderCommand) setLines(lines []CreateOrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(shippingAddress *kernel.Address) error {
	if shippingAddress != nil {
		if err := shippingAddress.Validate(); err != nil {
			return err
		}
	}

	c.shippingAddress = shippingAddress
	return nil
}
