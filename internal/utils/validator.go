package utils

import (
	"errors"
	"reflect"
	"strings"

	"HomeChef-Backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

type optionalValue interface {
	ValidationValue() any
}

func InitValidator() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// report json names instead of Go field names
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	Validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if v, ok := field.Interface().(optionalValue); ok {
			return v.ValidationValue()
		}
		return nil
	},
		domain.Optional[string]{},
		domain.Optional[float64]{},
		domain.Optional[int]{},
	)
}

// ValidationErrors flattens validator errors into field -> message.
func ValidationErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "the " + fe.Field() + " field is required"
	case "email":
		return "the " + fe.Field() + " must be a valid email address"
	case "min", "gte":
		return "the " + fe.Field() + " must be at least " + fe.Param()
	case "max", "lte":
		return "the " + fe.Field() + " may not be greater than " + fe.Param()
	case "gt":
		return "the " + fe.Field() + " must be greater than " + fe.Param()
	case "len":
		return "the " + fe.Field() + " must be " + fe.Param() + " characters"
	case "oneof":
		return "the " + fe.Field() + " must be one of: " + fe.Param()
	case "uuid":
		return "the " + fe.Field() + " must be a valid id"
	default:
		return "the " + fe.Field() + " field is invalid (" + fe.Tag() + ")"
	}
}
