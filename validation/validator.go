package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator. Field names in error messages come
// from the json tag rather than the Go field name.
func New() *validatorv10.Validate {
	v := validatorv10.New(validatorv10.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ErrorMap flattens validator errors into a field -> message map suitable
// for the error response body.
func ErrorMap(err error) map[string]string {
	out := map[string]string{}

	var verrs validatorv10.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = err.Error()
		return out
	}

	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing required field"
	case "email":
		return "not a valid email address"
	case "min":
		return fmt.Sprintf("shorter than minimum length %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "datetime":
		return "not a valid date, expected YYYY-MM-DD"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
