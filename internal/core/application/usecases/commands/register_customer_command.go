package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
)

// RegisterCustomerCommand represents a request to register a new customer.
// The email becomes the customer's unique registration key.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	firstName  string
	lastName   string
	email      kernel.Email

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// Validates that the identifier, names, and email are all well formed.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	firstName string,
	lastName string,
	email kernel.Email,
) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setFirstName(firstName),
		command.setLastName(lastName),
		command.setEmail(email),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the new customer's unique identifier.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FirstName returns the customer's first name.
func (c RegisterCustomerCommand) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c RegisterCustomerCommand) LastName() string {
	return c.lastName
}

// Email returns the registration email.
func (c RegisterCustomerCommand) Email() kernel.Email {
	return c.email
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return ErrFirstNameIsRequired
	}

	c.firstName = firstName
	return nil
}

func (c *RegisterCustomerCommand) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return ErrLastNameIsRequired
	}

	c.lastName = lastName
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}
