package kernel

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress")

// Address is an immutable postal address. Orders snapshot the address at
// placement time; shipments snapshot it again at creation, so later changes
// to a customer's stored address never affect in-flight deliveries.
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address. All four fields are required.
func NewAddress(street string, city string, zipCode string, country string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setZipCode(zipCode),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// Country returns the country name or code.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.zipCode == other.zipCode &&
		a.country == other.country
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s, %s", a.street, a.zipCode, a.city, a.country)
}

// Validate checks the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setStreet(street string) error {
	if strings.TrimSpace(street) == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setZipCode(zipCode string) error {
	if strings.TrimSpace(zipCode) == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}
	a.zipCode = zipCode
	return nil
}

func (a *Address) setCountry(country string) error {
	if strings.TrimSpace(country) == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
