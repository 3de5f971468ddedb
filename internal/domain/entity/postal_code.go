package entity

import (
	"regexp"

	domainerrors "storefront/internal/domain/errors"
)

var postalCodePattern = regexp.MustCompile(`^\d{3}-\d{4}$`)

// PostalCode is a validated postal code in NNN-NNNN format.
type PostalCode struct {
	value string
}

// NewPostalCode validates and wraps a postal code.
func NewPostalCode(value string) (PostalCode, error) {
	if !postalCodePattern.MatchString(value) {
		return PostalCode{}, domainerrors.NewValidationError("Postal code must be in format NNN-NNNN")
	}

	return PostalCode{value: value}, nil
}

// Value returns the wrapped code.
func (p PostalCode) Value() string {
	return p.value
}

// Equals reports structural equality on the wrapped code.
func (p PostalCode) Equals(other PostalCode) bool {
	return p.value == other.value
}
