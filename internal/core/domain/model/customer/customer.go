package customer

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when validating a zero-value
// Customer.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer constructor")

// Customer is a registered buyer. The email is fixed at registration and
// serves as the uniqueness key; profile fields and the stored address can
// change over time.
type Customer struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     kernel.Email
	phone     string
	address   *kernel.Address

	isConstructed bool
}

// NewCustomer registers a customer with the mandatory profile fields.
func NewCustomer(
	id kernel.UUID,
	firstName string,
	lastName string,
	email kernel.Email,
) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, errs.NewValueIsRequiredError("firstName")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, errs.NewValueIsRequiredError("lastName")
	}
	if err := email.Validate(); err != nil {
		return nil, err
	}

	return &Customer{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		email:         email,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	firstName string,
	lastName string,
	email kernel.Email,
	phone string,
	address *kernel.Address,
) (*Customer, error) {
	customer, err := NewCustomer(id, firstName, lastName, email)
	if err != nil {
		return nil, err
	}
	if address != nil {
		if err := address.Validate(); err != nil {
			return nil, err
		}
	}

	customer.phone = phone
	customer.address = address
	return customer, nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// FullName returns the first and last name joined with a space.
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// Email returns the registration email.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// Phone returns the contact phone number, empty if never set.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the stored shipping address, nil if never set.
func (c *Customer) Address() *kernel.Address {
	return c.address
}

// UpdateProfile replaces the name and phone fields.
func (c *Customer) UpdateProfile(firstName string, lastName string, phone string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("lastName")
	}

	c.firstName = firstName
	c.lastName = lastName
	c.phone = phone
	return nil
}

// UpdateAddress replaces the stored shipping address.
func (c *Customer) UpdateAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = &address
	return nil
}

// Validate checks the customer was created via a constructor.
func (c *Customer) Validate() error {
	if !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}
