package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vetform/pkg/validator"
)

func TestProductCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		severity validator.Severity
		key      string
	}{
		{"empty", "", validator.SeverityNone, ""},
		{"blank", "  ", validator.SeverityNone, ""},
		{"too short", "AB", validator.SeverityError, "validation.product_code.length"},
		{"minimum length", "ABC", validator.SeveritySuccess, "validation.product_code.valid"},
		{"hyphenated", "AB-123", validator.SeveritySuccess, "validation.product_code.valid"},
		{"underscore", "VAC_2026", validator.SeveritySuccess, "validation.product_code.valid"},
		{"space inside", "AB 123", validator.SeverityError, "validation.product_code.charset"},
		{"lowercase rejected", "ab-123", validator.SeverityError, "validation.product_code.charset"},
		{"maximum length", strings.Repeat("A", 20), validator.SeveritySuccess, "validation.product_code.valid"},
		{"above maximum", strings.Repeat("A", 21), validator.SeverityError, "validation.product_code.length"},
		{"trimmed before length", "  AB  ", validator.SeverityError, "validation.product_code.length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := validator.ProductCode(tt.value)
			assert.Equal(t, tt.severity, out.Severity)
			assert.Equal(t, tt.key, out.TranslationKey)
		})
	}

	t.Run("upper-cased input passes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, validator.SeveritySuccess, validator.ProductCode(strings.ToUpper("ab-123")).Severity)
	})
}

func TestEmptyValuesAreValid(t *testing.T) {
	t.Parallel()

	validators := map[string]func(string) validator.Outcome{
		"name":        func(v string) validator.Outcome { return validator.Name(v, false) },
		"owner name":  func(v string) validator.Outcome { return validator.Name(v, true) },
		"phone":       validator.Phone,
		"email":       validator.Email,
		"price":       func(v string) validator.Outcome { return validator.Price(v, false) },
		"weight":      validator.Weight,
		"age":         validator.Age,
		"product":     validator.ProductCode,
		"stock":       validator.Stock,
		"appointment": func(v string) validator.Outcome { return validator.Appointment(v, fixedNow) },
	}

	for name, fn := range validators {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out := fn("")
			assert.Equal(t, validator.SeverityNone, out.Severity)
			assert.False(t, out.Blocks())
		})
	}
}
