package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrCarrierIsRequired = errors.New("carrier is required")
)

// CreateShipmentCommand represents a request to create a shipment for a paid
// order.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	orderID    kernel.UUID
	carrier    string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	carrier string,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setOrderID(orderID),
		command.setCarrier(carrier),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the new shipment's unique identifier.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the shipped order's identifier.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Carrier returns the carrier handling the parcel.
func (c CreateShipmentCommand) Carrier() string {
	return c.carrier
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setCarrier(carrier string) error {
	if strings.TrimSpace(carrier) == "" {
		return ErrCarrierIsRequired
	}

	c.carrier = carrier
	return nil
}
