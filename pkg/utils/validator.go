package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Pakai nama field dari tag json supaya pesan error sesuai payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getSimpleErrorMessage(err)
		}
	}

	return errors
}

func getSimpleErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio y no puede ir vacio", err.Field())
	case "email":
		return "Ingrese un correo valido"
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s no puede tener mas de %s caracteres", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("%s no es valido", err.Field())
	}
}

// FormatValidationErrors joins field messages in field order.
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, errors[field])
	}
	return strings.Join(msgs, "; ")
}
