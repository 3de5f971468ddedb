package entity

import (
	"regexp"
	"strings"

	domainerrors "storefront/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// Email is a validated email address.
type Email struct {
	value string
}

// NewEmail validates and wraps an email address.
func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if !emailPattern.MatchString(trimmed) {
		return Email{}, domainerrors.NewValidationError("Invalid email format")
	}

	return Email{value: trimmed}, nil
}

// Value returns the wrapped address.
func (e Email) Value() string {
	return e.value
}

// Equals reports structural equality on the wrapped address.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
