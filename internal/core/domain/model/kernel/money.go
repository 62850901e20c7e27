package kernel

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or NewMoneyZero")

// Money is an immutable monetary amount in a single currency. The amount is
// normalized to two fractional digits with half-up rounding at construction,
// so equal prices always compare equal and totals survive round-trips
// through persistence.
//
// Arithmetic between two Money values requires matching currency codes.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromFloat(19.995), "EUR")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 20.00 EUR
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value with the amount rounded half-up to two
// fractional digits. The currency code must be a non-empty string and is
// normalized to upper case.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := money.setCurrency(currency); err != nil {
		return Money{}, err
	}

	money.amount = amount.Round(2)
	return money, nil
}

// NewMoneyZero creates a zero amount in the given currency. It is the
// starting point for total accumulation.
func NewMoneyZero(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the normalized decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the upper-case currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values. It fails when the currency
// codes differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("cannot operate on different currencies: %s vs %s", m.currency, other.currency))
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply returns the amount multiplied by an integer factor, rounded to
// two fractional digits.
func (m Money) Multiply(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))), m.currency)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the amount with two fractional digits followed by the
// currency code, e.g. "60.00 EUR".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Validate checks the Money was created via a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m *Money) setCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	m.currency = currency
	return nil
}
