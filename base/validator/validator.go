package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/sitebid/goapi/domain/listing"
)

func NewCustomValidator(v *validator.Validate) echo.Validator {
	// request structs tag category fields with `validate:"category"`
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return listing.Category(fl.Field().String()).IsValid()
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
