package kernel

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"Email must be created via NewEmail")

// Email is a customer email address, validated for basic shape at
// construction.
type Email struct {
	value string

	guard guard.ConstructorGuard
}

// NewEmail creates an Email. The value must be non-blank and contain '@'.
func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(value, "@") {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", value))
	}

	return Email{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the email address string.
func (e Email) Value() string {
	return e.value
}

// IsEqual compares two emails by value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}

// Validate checks the Email was created via NewEmail.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
