package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/watchchill/watchchill/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat", validateSeatID)

	return validator
}

// validateSeatID checks the row-letter + column-number seat grammar ("A1").
func validateSeatID(fl validator.FieldLevel) bool {
	return domain.ValidSeatID(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", err.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s item(s)", err.Param())
	case "seat":
		return "must be a valid seat identifier, e.g. A1"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}
