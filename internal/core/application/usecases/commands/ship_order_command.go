package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/guard"
)

var (
	ErrShipOrderCommandIsNotConstructed = errors.New(
		"ShipOrderCommand must be created via NewShipOrderCommand constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// ShipOrderCommand represents a request to send a pending shipment on its way.
type ShipOrderCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewShipOrderCommand creates a command to ship an order.
func NewShipOrderCommand(trackingNumber string) (ShipOrderCommand, error) {
	command := ShipOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTrackingNumber(trackingNumber); err != nil {
		return ShipOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

// TrackingNumber returns the shipped parcel's tracking code.
func (c ShipOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *ShipOrderCommand) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
