package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount string, currency string) kernel.Money {
	t.Helper()
	d, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	m, err := kernel.NewMoney(d, currency)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("normalizes to two fractional digits with half-up rounding", func(t *testing.T) {
		testCases := []struct {
			name     string
			amount   string
			expected string
		}{
			{"rounds half up", "19.995", "20.00"},
			{"rounds down below half", "19.994", "19.99"},
			{"pads whole numbers", "10", "10.00"},
			{"keeps exact cents", "10.50", "10.50"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				m := mustMoney(t, tc.amount, "EUR")
				assert.Equal(t, tc.expected, m.Amount().StringFixed(2))
			})
		}
	})

	t.Run("normalizes currency to upper case", func(t *testing.T) {
		m := mustMoney(t, "1.00", "eur")
		assert.Equal(t, "EUR", m.Currency())
	})

	t.Run("fails on blank currency", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(1), "  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("adds amounts within one currency", func(t *testing.T) {
		sum, err := mustMoney(t, "10.00", "EUR").Add(mustMoney(t, "2.50", "EUR"))

		require.NoError(t, err)
		assert.Equal(t, "12.50 EUR", sum.String())
	})

	t.Run("is commutative within one currency", func(t *testing.T) {
		a := mustMoney(t, "3.33", "EUR")
		b := mustMoney(t, "6.67", "EUR")

		ab, err := a.Add(b)
		require.NoError(t, err)
		ba, err := b.Add(a)
		require.NoError(t, err)

		assert.True(t, ab.IsEqual(ba))
	})

	t.Run("is associative within one currency", func(t *testing.T) {
		a := mustMoney(t, "1.11", "EUR")
		b := mustMoney(t, "2.22", "EUR")
		c := mustMoney(t, "3.33", "EUR")

		ab, err := a.Add(b)
		require.NoError(t, err)
		abc1, err := ab.Add(c)
		require.NoError(t, err)

		bc, err := b.Add(c)
		require.NoError(t, err)
		abc2, err := a.Add(bc)
		require.NoError(t, err)

		assert.True(t, abc1.IsEqual(abc2))
	})

	t.Run("fails across differing currencies", func(t *testing.T) {
		_, err := mustMoney(t, "10.00", "EUR").Add(mustMoney(t, "10.00", "USD"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "EUR vs USD")
	})

	t.Run("fails on unconstructed operand", func(t *testing.T) {
		var zero kernel.Money

		_, err := mustMoney(t, "10.00", "EUR").Add(zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney_Multiply(t *testing.T) {
	t.Run("multiplies by integer factor", func(t *testing.T) {
		total, err := mustMoney(t, "10.00", "EUR").Multiply(6)

		require.NoError(t, err)
		assert.Equal(t, "60.00 EUR", total.String())
	})

	t.Run("rounds the product to two fractional digits", func(t *testing.T) {
		total, err := mustMoney(t, "0.33", "EUR").Multiply(100)

		require.NoError(t, err)
		assert.Equal(t, "33.00 EUR", total.String())
	})
}

func TestNewMoneyZero(t *testing.T) {
	zero, err := kernel.NewMoneyZero("EUR")

	require.NoError(t, err)
	assert.Equal(t, "0.00 EUR", zero.String())
	assert.False(t, zero.IsPositive())
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}
