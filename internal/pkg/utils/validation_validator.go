package utils

import (
	"simrs-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("billing_category", validateBillingCategory)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateBillingCategory(fl validator.FieldLevel) bool {
	return constvars.IsKnownServiceCategory(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, known := range constvars.KnownPaymentMethods {
		if value == known {
			return true
		}
	}
	return false
}
