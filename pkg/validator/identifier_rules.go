package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	ProductCodeMinLength = 3
	ProductCodeMaxLength = 20
)

// Case-sensitive: callers upper-case input before validating.
var productCodePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

// ProductCode validates an inventory product code.
func ProductCode(value string) Outcome {
	v := strings.TrimSpace(value)
	if v == "" {
		return Valid()
	}
	n := utf8.RuneCountInString(v)

	return First(
		Success("validation.product_code.valid", "Código válido.", nil),
		Rule{
			Check: func() bool { return n >= ProductCodeMinLength && n <= ProductCodeMaxLength },
			Fail: Invalid(
				"validation.product_code.length",
				fmt.Sprintf("El código debe tener entre %d-%d caracteres.", ProductCodeMinLength, ProductCodeMaxLength),
				map[string]any{"min": ProductCodeMinLength, "max": ProductCodeMaxLength},
			),
		},
		Rule{
			Check: func() bool { return productCodePattern.MatchString(v) },
			Fail: Invalid(
				"validation.product_code.charset",
				"El código solo puede contener letras, números, guiones y guiones bajos.",
				nil,
			),
		},
	)
}
