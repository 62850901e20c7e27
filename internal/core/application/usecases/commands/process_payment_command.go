package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrProcessPaymentCommandIsNotConstructed = errors.New(
		"ProcessPaymentCommand must be created via NewProcessPaymentCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// ProcessPaymentCommand represents a request to charge an order through the
// payment gateway.
type ProcessPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	orderID       kernel.UUID
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewProcessPaymentCommand creates a command to process an order payment.
func NewProcessPaymentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	paymentMethod string,
) (ProcessPaymentCommand, error) {
	command := ProcessPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPaymentID(paymentID),
		command.setOrderID(orderID),
		command.setPaymentMethod(paymentMethod),
	); err != nil {
		return ProcessPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessPaymentCommand) Validate() error {
	return c.guard.Validate(ErrProcessPaymentCommandIsNotConstructed)
}

// PaymentID returns the new payment attempt's unique identifier.
func (c ProcessPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the paid order's identifier.
func (c ProcessPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PaymentMethod returns the customer's chosen payment method.
func (c ProcessPaymentCommand) PaymentMethod() string {
	return c.paymentMethod
}

func (c *ProcessPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *ProcessPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessPaymentCommand) setPaymentMethod(paymentMethod string) error {
	if strings.TrimSpace(paymentMethod) == "" {
		return ErrPaymentMethodIsRequired
	}

	c.paymentMethod = paymentMethod
	return nil
}
