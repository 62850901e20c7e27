package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a draft order. Used when an
// order was created without immediate placement.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	shippingAddress *kernel.Address

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a draft order. The shipping
// address is optional; when nil the customer's stored address is used.
func NewPlaceOrderCommand(orderID kernel.UUID, shippingAddress *kernel.Address) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return PlaceOrderCommand{}, err
	}
	if shippingAddress != nil {
		if err := shippingAddress.Validate(); err != nil {
			return PlaceOrderCommand{}, err
		}
	}

	command.shippingAddress = shippingAddress
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the placed order's identifier.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShippingAddress returns the requested delivery address, nil when the
// customer's stored address should be used.
func (c PlaceOrderCommand) ShippingAddress() *kernel.Address {
	return c.shippingAddress
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
