package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("fecha", validateFecha)
}

// ValidateStruct checks every field of s and reports all failures at once.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateStructPartial checks only the named Go fields of s. With no field names
// nothing is checked.
func ValidateStructPartial(s interface{}, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return validate.StructPartial(s, fields...)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateFecha(fl validator.FieldLevel) bool {
	_, err := ParseFechaIngreso(fl.Field().String())
	return err == nil
}
