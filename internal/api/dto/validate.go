package dto

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/edupanel/center-service/pkg/util"
)

var validate = validator.New()

// Validate runs struct tag validation and converts failures into the
// shared validation error shape.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	details := map[string]any{}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return apperrors.NewValidationError("invalid payload", details)
}
