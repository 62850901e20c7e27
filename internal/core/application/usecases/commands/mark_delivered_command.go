package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents a request to record a parcel reaching the
// customer.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to mark a shipment delivered.
func NewMarkDeliveredCommand(trackingNumber string) (MarkDeliveredCommand, error) {
	command := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTrackingNumber(trackingNumber); err != nil {
		return MarkDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// TrackingNumber returns the delivered parcel's tracking code.
func (c MarkDeliveredCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *MarkDeliveredCommand) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return ErrTrackingNumberIsRequired
	}

	c.trackingNumber = trackingNumber
	return nil
}
