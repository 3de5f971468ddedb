package entity

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
)

const maxCategoryLength = 50

// ProductCategory is a validated catalog category label.
type ProductCategory struct {
	value string
}

// NewProductCategory validates and wraps a category label.
func NewProductCategory(value string) (ProductCategory, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductCategory{}, domainerrors.NewValidationError("Product category must not be empty")
	}
	if len(trimmed) > maxCategoryLength {
		return ProductCategory{}, domainerrors.NewValidationError("Product category must be 50 characters or fewer")
	}

	return ProductCategory{value: trimmed}, nil
}

// Value returns the wrapped label.
func (c ProductCategory) Value() string {
	return c.value
}

// Equals reports structural equality on the wrapped label.
func (c ProductCategory) Equals(other ProductCategory) bool {
	return c.value == other.value
}
