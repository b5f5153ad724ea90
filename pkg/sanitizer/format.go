package sanitizer

import "strings"

// PhoneInput removes every character that cannot appear in a phone number.
// Digits, "+", "-", "(", ")" and spaces are kept.
func PhoneInput(phone string) string {
	return strings.Map(func(r rune) rune {
		if isPhoneRune(r) {
			return r
		}
		return -1
	}, phone)
}

// PhoneDigits returns only the digits of a phone number.
func PhoneDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

func isPhoneRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '+', r == '-', r == '(', r == ')', r == ' ':
		return true
	default:
		return false
	}
}
