package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	dErrors "github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/domain-errors"
	"github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/email"
)

// Validation is pure: these helpers never perform I/O and report
// business-invalid input as coded errors, not panics.

func validateLength(field, value string, min, max int) error {
	if n := utf8.RuneCountInString(value); n < min || n > max {
		return dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("%s must be between %d and %d characters", field, min, max))
	}
	return nil
}

func validateName(name string) error {
	return validateLength("name", name, 2, 100)
}

func validateEmail(addr string) error {
	if !email.Valid(addr) {
		return dErrors.New(dErrors.CodeValidation, "email must be a valid email address")
	}
	return nil
}

// NormalizePhone strips every non-digit character from raw and validates the
// result as a 10-digit Indian mobile number. The normalized form is what gets
// stored and returned.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if len(cleaned) != 10 || cleaned[0] < '6' {
		return "", dErrors.New(dErrors.CodeValidation,
			"phone must be a valid 10-digit Indian mobile number")
	}
	return cleaned, nil
}
