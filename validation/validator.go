package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// The one validator instance shared by every boundary layer, so handler and
// builder validation can never drift apart.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates a tagged payload struct and renders every violation as a
// field-scoped message. It is pure and total: any expected malformed input
// comes back as Errors, never as a panic.
func Struct(payload any) Errors {
	errs := Errors{}
	err := validate.Struct(payload)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-struct input is a programming error at the call site.
		errs.Add("_", err.Error())
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
