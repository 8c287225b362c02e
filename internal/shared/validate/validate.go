package validate

import "github.com/go-playground/validator/v10"

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates request payloads against their `validate:` tags.
func Struct(in any) error {
	return v.Struct(in)
}
