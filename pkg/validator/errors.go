package validator

import "errors"

var (
	// ErrNotANumber is returned when a value has no numeric prefix.
	ErrNotANumber = errors.New("value has no numeric prefix")

	// ErrInvalidDateTime is returned when a value matches none of the accepted date-time layouts.
	ErrInvalidDateTime = errors.New("invalid date-time value")
)
