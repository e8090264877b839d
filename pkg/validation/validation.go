// Package validation checks request payloads against their struct tags and
// renders failures as field-level messages.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports json field names and understands the
// notblank tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// Struct validates payload and returns a single message describing every
// failing field, or "" when the payload is valid.
func (v *Validator) Struct(payload any) (string, error) {
	err := v.validate.Struct(payload)
	if err == nil {
		return "", nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "", err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}
	return strings.Join(messages, "; "), nil
}

func message(fe validator.FieldError) string {
	label := capitalize(fe.Field())
	switch fe.Tag() {
	case "email":
		return "Valid email is required"
	case "required", "notblank":
		return label + " is required"
	default:
		return label + " is invalid"
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
