package kernel

import (
	"fmt"
	"strconv"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when validating a zero-value Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"Quantity must be created via NewQuantity")

// Quantity is a non-negative integer amount of stock or order items.
// Construction fails for negative values.
type Quantity struct {
	value int

	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. Negative values are rejected.
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", value))
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the integer amount.
func (q Quantity) Value() int {
	return q.value
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

// Validate checks the Quantity was created via NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}
