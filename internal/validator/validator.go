package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator so handlers get a flat message
// instead of the library's error types.
type Validator struct {
	cli *validator.Validate
}

func New() *Validator {
	return &Validator{cli: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates s and returns a short human-readable message per failed
// field, or nil when the struct is valid.
func (v *Validator) Struct(s any) []string {
	err := v.cli.Struct(s)
	if err == nil {
		return nil
	}
	var msgs []string
	for _, fe := range err.(validator.ValidationErrors) {
		msgs = append(msgs, strings.ToLower(fe.Field())+" failed on '"+fe.Tag()+"'")
	}
	return msgs
}
