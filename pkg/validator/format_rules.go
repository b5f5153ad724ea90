package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	PhoneMinDigits = 7
	PhoneMaxDigits = 15
	EmailMaxLength = 100
)

var (
	phonePattern = regexp.MustCompile(`^[+]?[0-9\-() ]{7,20}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Phone validates a phone number: 7 to 15 digits and an optional leading
// plus followed by digits, hyphens, parentheses and spaces.
func Phone(value string) Outcome {
	v := strings.TrimSpace(value)
	if v == "" {
		return Valid()
	}

	digits := countDigits(v)

	return First(
		Success("validation.phone.valid", "Teléfono válido.", nil),
		Rule{
			Check: func() bool { return digits >= PhoneMinDigits },
			Fail: Invalid(
				"validation.phone.too_few_digits",
				fmt.Sprintf("El teléfono debe tener al menos %d dígitos.", PhoneMinDigits),
				map[string]any{"min": PhoneMinDigits},
			),
		},
		Rule{
			Check: func() bool { return digits <= PhoneMaxDigits },
			Fail: Invalid(
				"validation.phone.too_many_digits",
				"El teléfono tiene demasiados dígitos.",
				map[string]any{"max": PhoneMaxDigits},
			),
		},
		Rule{
			Check: func() bool { return phonePattern.MatchString(v) },
			Fail:  Invalid("validation.phone.format", "Formato de teléfono inválido.", nil),
		},
	)
}

// Email validates an e-mail address shape (local@domain.tld) and length.
func Email(value string) Outcome {
	v := strings.TrimSpace(value)
	if v == "" {
		return Valid()
	}

	return First(
		Success("validation.email.valid", "Email válido.", nil),
		Rule{
			Check: func() bool { return emailPattern.MatchString(v) },
			Fail:  Invalid("validation.email.format", "Formato de email inválido.", nil),
		},
		Rule{
			Check: func() bool { return utf8.RuneCountInString(v) <= EmailMaxLength },
			Fail: Invalid(
				"validation.email.too_long",
				fmt.Sprintf("El email es demasiado largo (máximo %d caracteres).", EmailMaxLength),
				map[string]any{"max": EmailMaxLength},
			),
		},
	)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
