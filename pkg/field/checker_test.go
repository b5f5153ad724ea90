package field_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CLT", -3*60*60)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, loc)
	checker := field.NewChecker(
		field.WithClock(func() time.Time { return now }),
		field.WithLocation(loc),
	)

	tests := []struct {
		name     string
		input    *field.Input
		category field.Category
		severity validator.Severity
	}{
		{"pet name", field.NewInput("nombre", "text", "Firulais"), field.Name, validator.SeveritySuccess},
		{"owner name too short", field.NewInput("nombre_propietario", "text", "Al"), field.Name, validator.SeverityError},
		{"pet name of two", field.NewInput("nombre", "text", "Al"), field.Name, validator.SeveritySuccess},
		{"phone", field.NewInput("telefono", "tel", "123456"), field.Phone, validator.SeverityError},
		{"email", field.NewInput("correo", "email", "ana@vet.cl"), field.Email, validator.SeveritySuccess},
		{"estimated price", field.NewInput("precio_estimado", "number", "1000001"), field.Price, validator.SeverityError},
		{"regular price", field.NewInput("precio", "number", "1000001"), field.Price, validator.SeveritySuccess},
		{"weight", field.NewInput("peso", "number", "150"), field.Weight, validator.SeverityWarning},
		{"age", field.NewInput("edad", "number", "60"), field.Age, validator.SeverityError},
		{"appointment", field.NewInput("fecha_hora", "datetime-local", "2026-10-25T10:00"), field.AppointmentDateTime, validator.SeverityError},
		{"product code", field.NewInput("codigo", "text", "AB-123"), field.ProductCode, validator.SeveritySuccess},
		{"stock", field.NewInput("stock", "number", "-1"), field.Stock, validator.SeverityError},
		{"unclassified", field.NewInput("observaciones", "textarea", "!!!"), field.Unclassified, validator.SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cat, out := checker.Check(tt.input)
			assert.Equal(t, tt.category, cat)
			assert.Equal(t, tt.severity, out.Severity)
		})
	}
}

func TestChecker_AppointmentUsesClinicLocation(t *testing.T) {
	t.Parallel()

	utcNow := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	clinic := time.FixedZone("CLT", -3*60*60)
	checker := field.NewChecker(
		field.WithClock(func() time.Time { return utcNow }),
		field.WithLocation(clinic),
	)

	// 09:00 in the clinic is 12:00 UTC, so the wall-clock value must be read in clinic time.
	out := checker.Validate(field.AppointmentDateTime, "fecha_hora", "2026-10-20T09:00")
	assert.Equal(t, validator.SeveritySuccess, out.Severity)

	out = checker.Validate(field.AppointmentDateTime, "fecha_hora", "2026-10-20T21:00")
	assert.Equal(t, "validation.appointment.hours", out.TranslationKey)
}

func TestChecker_CustomClassifier(t *testing.T) {
	t.Parallel()

	checker := field.NewChecker(field.WithClassifier(field.NewClassifier(
		field.Rule{Category: field.Weight, Match: field.NameIs("peso_kg")},
	)))
	cat, out := checker.Check(field.NewInput("peso_kg", "number", "0"))
	assert.Equal(t, field.Weight, cat)
	assert.True(t, out.Blocks())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("phone is stripped in place", func(t *testing.T) {
		t.Parallel()
		in := field.NewInput("telefono", "tel", "+56 9 abc 1234")
		assert.True(t, field.Normalize(field.Phone, in))
		assert.Equal(t, "+56 9  1234", in.Value())
	})

	t.Run("product code is upper-cased in place", func(t *testing.T) {
		t.Parallel()
		in := field.NewInput("codigo", "text", "ab-123")
		assert.True(t, field.Normalize(field.ProductCode, in))
		assert.Equal(t, "AB-123", in.Value())
	})

	t.Run("unchanged value reports false", func(t *testing.T) {
		t.Parallel()
		in := field.NewInput("codigo", "text", "AB-123")
		assert.False(t, field.Normalize(field.ProductCode, in))
	})

	t.Run("categories without transform are untouched", func(t *testing.T) {
		t.Parallel()
		in := field.NewInput("nombre", "text", "luna")
		assert.False(t, field.Normalize(field.Name, in))
		assert.Equal(t, "luna", in.Value())
		assert.Nil(t, field.InputTransform(field.Weight))
	})
}
