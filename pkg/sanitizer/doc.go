// Package sanitizer provides the live-formatting transforms applied to form
// fields while the user types.
//
// These are not validators: they rewrite the raw value in place on every
// input event, before any validation runs. Two transforms are used by the
// clinic forms:
//
//   - PhoneInput drops every character that cannot appear in a phone number
//     (anything outside digits, "+", "-", "(", ")" and space).
//   - ProductCodeInput upper-cases product codes so they match the
//     case-sensitive code grammar.
//
// The higher-order Apply and Compose helpers build pipelines out of the
// individual transforms:
//
//	clean := sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpper)
//	code := clean("  ab-123 ") // "AB-123"
//
// All helpers are stateless and never fail; unexpected input is returned
// with the offending characters removed rather than rejected.
package sanitizer
