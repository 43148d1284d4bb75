package utils

import (
	"medirecord-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleAdmin, constvars.RoleDoctor, constvars.RoleNurse, constvars.RoleReceptionist:
		return true
	}
	return false
}
