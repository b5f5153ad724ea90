package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	NameMinLength      = 2
	OwnerNameMinLength = 3
	NameMaxLength      = 100
)

// Letters (including Spanish diacritics), whitespace, hyphens, apostrophes and periods.
// Whitespace covers no-break and other Unicode spaces, as browsers do.
var nameCharset = regexp.MustCompile(`^[a-zA-ZáéíóúñüÁÉÍÓÚÑÜ\s\v\p{Z}\x{FEFF}\-'.]+$`)

// Name validates a pet or owner name. Owner names (owner == true) need at
// least three characters, other names two. An empty value is not judged.
// Length is counted in code points after NFC normalisation.
func Name(value string, owner bool) Outcome {
	v := norm.NFC.String(strings.TrimSpace(value))
	n := utf8.RuneCountInString(v)
	if n == 0 {
		return Valid()
	}

	min := NameMinLength
	if owner {
		min = OwnerNameMinLength
	}

	return First(
		Success("validation.name.valid", "Nombre válido.", nil),
		Rule{
			Check: func() bool { return n >= min },
			Fail: Invalid(
				"validation.name.too_short",
				fmt.Sprintf("El nombre debe tener al menos %d caracteres.", min),
				map[string]any{"min": min},
			),
		},
		Rule{
			Check: func() bool { return n <= NameMaxLength },
			Fail: Invalid(
				"validation.name.too_long",
				fmt.Sprintf("El nombre es demasiado largo (máximo %d caracteres).", NameMaxLength),
				map[string]any{"max": NameMaxLength},
			),
		},
		Rule{
			Check: func() bool { return nameCharset.MatchString(v) },
			Fail: Invalid(
				"validation.name.charset",
				"El nombre solo puede contener letras, espacios, guiones y apóstrofes.",
				nil,
			),
		},
	)
}
