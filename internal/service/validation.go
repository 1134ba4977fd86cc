package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their wire names so error keys match the request.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs the struct's validate tags and collects every failure into a
// *ValidationError keyed by field.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return fmt.Errorf("validate %T: %w", in, err)
	}

	out := &ValidationError{}
	for _, fe := range fes {
		out.Add(fe.Field(), fieldMessage(fe))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	field := words(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s field must match %s.", field, words(fe.Param()))
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// words turns "first_name" or "NewPassword" into "first name" / "new password".
func words(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r == '_':
			b.WriteByte(' ')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
