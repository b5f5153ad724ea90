package validator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
	hexPrefix   = regexp.MustCompile(`^([+-]?)0[xX]([0-9a-fA-F]*)`)
)

// ParseFloat parses the longest decimal prefix of value, the way browsers
// parse number inputs: leading whitespace is skipped and trailing garbage is
// ignored ("12.5kg" is 12.5). Returns ErrNotANumber when no prefix exists.
func ParseFloat(value string) (float64, error) {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)
	m := floatPrefix.FindString(s)
	if m == "" {
		return 0, ErrNotANumber
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Overflow yields ±Inf, which is still a usable comparison value.
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
			return f, nil
		}
		return 0, ErrNotANumber
	}
	return f, nil
}

// ParseInt parses the leading integer of value ("3.7" is 3). A 0x prefix
// reads the digits as hexadecimal ("0x1F" is 31), like parseInt without a
// radix. Returns ErrNotANumber when no digits are found.
func ParseInt(value string) (int64, error) {
	s := strings.TrimLeftFunc(value, unicode.IsSpace)

	base, m := 10, intPrefix.FindString(s)
	if hex := hexPrefix.FindStringSubmatch(s); hex != nil {
		if hex[2] == "" {
			return 0, ErrNotANumber
		}
		base, m = 16, hex[1]+hex[2]
	}
	if m == "" {
		return 0, ErrNotANumber
	}

	n, err := strconv.ParseInt(m, base, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, ErrNotANumber
	}
	// On overflow ParseInt saturates to the int64 bounds.
	return n, nil
}

// Wall-clock layouts are interpreted in the caller's location.
var wallClockLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseDateTime parses an appointment value. datetime-local style values are
// read in loc; RFC 3339 values keep their offset; a bare date is UTC midnight.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}

	return time.Time{}, ErrInvalidDateTime
}
