package commands

import (
	"errors"
	"strings"

	"storefront/internal/pkg/guard"
)

var (
	ErrCapturePaymentCommandIsNotConstructed = errors.New(
		"CapturePaymentCommand must be created via NewCapturePaymentCommand constructor",
	)
	ErrPaymentReferenceIsRequired = errors.New("payment reference is required")
)

// CapturePaymentCommand represents a request to collect previously authorized
// funds.
type CapturePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentReference string

	guard guard.ConstructorGuard
}

// NewCapturePaymentCommand creates a command to capture an authorized payment.
func NewCapturePaymentCommand(paymentReference string) (CapturePaymentCommand, error) {
	command := CapturePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setPaymentReference(paymentReference); err != nil {
		return CapturePaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CapturePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCapturePaymentCommandIsNotConstructed)
}

// PaymentReference returns the captured payment's reference code.
func (c CapturePaymentCommand) PaymentReference() string {
	return c.paymentReference
}

func (c *CapturePaymentCommand) setPaymentReference(paymentReference string) error {
	if strings.TrimSpace(paymentReference) == "" {
		return ErrPaymentReferenceIsRequired
	}

	c.paymentReference = paymentReference
	return nil
}
