package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vetform/pkg/validator"
)

// Monday, 19 October 2026, noon.
var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.FixedZone("CLT", -3*60*60))

func TestAppointment(t *testing.T) {
	t.Parallel()

	now := fixedNow

	tests := []struct {
		name     string
		value    string
		severity validator.Severity
		key      string
	}{
		{"empty", "", validator.SeverityNone, ""},
		{"unparsable", "el martes", validator.SeverityNone, ""},
		{"tomorrow morning on a tuesday", "2026-10-20T09:00", validator.SeveritySuccess, "validation.appointment.valid"},
		{"tomorrow before opening", "2026-10-20T07:59", validator.SeverityError, "validation.appointment.hours"},
		{"opening hour", "2026-10-20T08:00", validator.SeveritySuccess, "validation.appointment.valid"},
		{"last slot", "2026-10-20T19:59", validator.SeveritySuccess, "validation.appointment.valid"},
		{"closing hour", "2026-10-20T20:00", validator.SeverityError, "validation.appointment.hours"},
		{"next sunday within hours", "2026-10-25T10:00", validator.SeverityError, "validation.appointment.sunday"},
		{"saturday", "2026-10-24T10:00", validator.SeveritySuccess, "validation.appointment.valid"},
		{"earlier today", "2026-10-19T11:00", validator.SeverityError, "validation.appointment.past"},
		{"exactly now", "2026-10-19T12:00", validator.SeverityError, "validation.appointment.past"},
		{"exactly one year ahead", "2027-10-19T12:00", validator.SeveritySuccess, "validation.appointment.valid"},
		{"more than a year ahead", "2027-10-20T10:00", validator.SeverityError, "validation.appointment.too_far"},
		{"utc value converted to local hour", "2026-10-20T12:00:00Z", validator.SeveritySuccess, "validation.appointment.valid"},
		{"bare date is utc midnight", "2026-10-21", validator.SeverityError, "validation.appointment.hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := validator.Appointment(tt.value, now)
			assert.Equal(t, tt.severity, out.Severity)
			assert.Equal(t, tt.key, out.TranslationKey)
		})
	}

	t.Run("past check wins over hours", func(t *testing.T) {
		t.Parallel()
		out := validator.Appointment("2026-10-18T22:00", now)
		assert.Equal(t, "validation.appointment.past", out.TranslationKey)
		assert.Equal(t, "La fecha debe ser en el futuro.", out.Message)
	})

	t.Run("sunday message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "No se atiende los domingos.", validator.Appointment("2026-10-25T10:00", now).Message)
	})
}
