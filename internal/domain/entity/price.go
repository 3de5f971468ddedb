package entity

import (
	"math"

	domainerrors "storefront/internal/domain/errors"
)

// Price is a monetary amount in the smallest currency unit.
// Once constructed it is guaranteed non-negative.
type Price struct {
	value int64
}

// NewPrice validates and wraps a monetary amount.
func NewPrice(value int64) (Price, error) {
	if value < 0 {
		return Price{}, domainerrors.NewValidationError("Price must be zero or greater")
	}

	return Price{value: value}, nil
}

// Value returns the wrapped amount.
func (p Price) Value() int64 {
	return p.value
}

// MultiplyBy returns the line total for the given quantity.
func (p Price) MultiplyBy(quantity Quantity) Price {
	return Price{value: p.value * int64(quantity.Value())}
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{value: p.value + other.value}
}

// ApplyDiscount returns the price reduced by the given factor.
// The factor must be within [0, 1]; fractional results are floored,
// so the result can never go negative.
func (p Price) ApplyDiscount(factor float64) (Price, error) {
	if factor < 0 || factor > 1 {
		return Price{}, domainerrors.NewValidationError("Discount factor must be between 0 and 1")
	}

	discounted := int64(math.Floor(float64(p.value) * (1 - factor)))

	return Price{value: discounted}, nil
}

// Equals reports structural equality on the wrapped amount.
func (p Price) Equals(other Price) bool {
	return p.value == other.value
}
