// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "storefront/internal/domain/errors"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an Echo validator backed by struct tag rules.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct tag validation and maps failures onto the shared
// application error shape so the error handler renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return domainerrors.ErrValidationFailed.WithDetails(validationErrors.Error())
		}

		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
