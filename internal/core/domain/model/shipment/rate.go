package shipment

import (
	"github.com/shopspring/decimal"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ShippingRate computes shipment cost as a flat amount per order line.
type ShippingRate struct {
	perLine decimal.Decimal
}

// DefaultShippingRate returns the standard flat rate of 5.99 per order line.
func DefaultShippingRate() ShippingRate {
	return ShippingRate{perLine: decimal.NewFromFloat(5.99)}
}

// NewShippingRate creates a rate with a custom per-line amount.
func NewShippingRate(perLine decimal.Decimal) (ShippingRate, error) {
	if !perLine.IsPositive() {
		return ShippingRate{}, errs.NewValueIsInvalidError("perLine")
	}
	return ShippingRate{perLine: perLine}, nil
}

// CalculateCost returns the cost of shipping an order with the given number
// of lines.
func (r ShippingRate) CalculateCost(lineCount int, currency string) (kernel.Money, error) {
	if lineCount <= 0 {
		return kernel.Money{}, errs.NewValueIsInvalidError("lineCount")
	}
	return kernel.NewMoney(r.perLine.Mul(decimal.NewFromInt(int64(lineCount))), currency)
}
