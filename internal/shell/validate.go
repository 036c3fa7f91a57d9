package shell

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidEmail accepts syntactically valid email addresses.
func ValidEmail(candidate string) error {
	return validate.Var(strings.TrimSpace(candidate), "required,email")
}

// ValidDecimal accepts money amounts such as 9.99.
func ValidDecimal(candidate string) error {
	return validate.Var(strings.TrimSpace(candidate), "required,numeric")
}

// ValidInteger accepts whole numbers.
func ValidInteger(candidate string) error {
	return validate.Var(strings.TrimSpace(candidate), "required,number")
}
