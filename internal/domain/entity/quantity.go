package entity

import (
	domainerrors "storefront/internal/domain/errors"
)

// MaxQuantity is the largest number of units a single line may carry.
const MaxQuantity = 99

// Quantity is a count of units in [1, MaxQuantity].
type Quantity struct {
	value int
}

// NewQuantity validates and wraps a unit count.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, domainerrors.NewValidationError("Quantity must be a positive integer")
	}
	if value > MaxQuantity {
		return Quantity{}, domainerrors.NewValidationError("Quantity must not exceed 99")
	}

	return Quantity{value: value}, nil
}

// Value returns the wrapped count.
func (q Quantity) Value() int {
	return q.value
}

// Add returns the combined quantity, re-validated against the allowed range.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	return NewQuantity(q.value + other.value)
}

// Subtract returns the reduced quantity. A result of zero or less is a
// domain error, not a silent clamp; removing a line entirely is the cart's
// job, not the quantity's.
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	return NewQuantity(q.value - other.value)
}

// Equals reports structural equality on the wrapped count.
func (q Quantity) Equals(other Quantity) bool {
	return q.value == other.value
}
