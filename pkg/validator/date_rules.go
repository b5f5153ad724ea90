package validator

import (
	"time"
)

const (
	OpeningHour = 8
	ClosingHour = 20
)

// Appointment validates an appointment date-time against now. The value must
// lie in the future, at most one year ahead, within opening hours and not on
// a Sunday. Wall-clock values and the hour/weekday checks use now's location.
func Appointment(value string, now time.Time) Outcome {
	loc := now.Location()
	t, err := ParseDateTime(value, loc)
	if err != nil {
		return Valid()
	}
	local := t.In(loc)

	return First(
		Success("validation.appointment.valid", "Fecha válida.", nil),
		Rule{
			Check: func() bool { return t.After(now) },
			Fail:  Invalid("validation.appointment.past", "La fecha debe ser en el futuro.", nil),
		},
		Rule{
			Check: func() bool { return !t.After(now.AddDate(1, 0, 0)) },
			Fail: Invalid(
				"validation.appointment.too_far",
				"No se pueden programar citas con más de 1 año de anticipación.",
				nil,
			),
		},
		Rule{
			Check: func() bool { return local.Hour() >= OpeningHour && local.Hour() < ClosingHour },
			Fail: Invalid(
				"validation.appointment.hours",
				"Las citas deben ser entre 8:00 AM y 8:00 PM.",
				map[string]any{"open": OpeningHour, "close": ClosingHour},
			),
		},
		Rule{
			Check: func() bool { return local.Weekday() != time.Sunday },
			Fail:  Invalid("validation.appointment.sunday", "No se atiende los domingos.", nil),
		},
	)
}
