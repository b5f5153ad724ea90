// Package validator implements the per-category field validators used by the
// clinic admin forms: owner and pet names, phone numbers, e-mail addresses,
// prices, weights, ages, appointment date-times, product codes and stock
// counts.
//
// Every validator is a pure function from a raw field value (plus the minimal
// context it needs, such as the current time for appointments) to an Outcome.
// Validators are assembled from small Rule values that pair a boolean Check
// with the Outcome reported when the check fails. First evaluates the rules
// in order and returns the first failure, or the success outcome when every
// rule passes.
//
// # Outcomes
//
// An Outcome carries exactly one severity:
//
//   - SeverityNone    – nothing to report (empty or not yet parsable input)
//   - SeveritySuccess – the value is valid and a confirmation is shown
//   - SeverityWarning – advisory message, does not block submission
//   - SeverityError   – user-correctable defect, blocks submission
//
// Messages are bundled in Spanish. Each Outcome also exposes a TranslationKey
// and TranslationValues so a translator can re-render the message.
//
// # Leniency
//
// Numeric and date validators never reject input they cannot parse. A value
// such as "abc" in a weight field is treated as not yet validatable and
// yields Valid(). This keeps partially typed input from blocking a form.
//
// # Usage
//
//	out := validator.Weight("150")
//	if out.Blocks() {
//		// render out.Message as an error
//	}
package validator
