package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Los errores se reportan con el nombre JSON del campo, no el de Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Validate corre las reglas declaradas en los tags `validate` de v.
// Devuelve nil o un *ValidationError con todos los campos inválidos.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), messageFor(fe))
	}
	return verr.orNil()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "notblank":
		return "this field may not be blank"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	default:
		return "invalid value"
	}
}
