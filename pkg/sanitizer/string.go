package sanitizer

import "strings"

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ProductCodeInput forces a product code to uppercase. Whitespace is kept so
// the cursor position in the live field does not jump; the validator trims.
var ProductCodeInput Transform = ToUpper
