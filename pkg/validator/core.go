package validator

import "fmt"

// Severity classifies an Outcome.
type Severity int

const (
	// SeverityNone means there is nothing to report for the field.
	SeverityNone Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// String returns the class name used by the feedback layer.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// Outcome is the result of validating a single field value.
// It never carries more than one message.
type Outcome struct {
	Severity          Severity
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Valid returns an outcome with nothing to report.
func Valid() Outcome {
	return Outcome{Severity: SeverityNone}
}

// Success returns a valid outcome carrying a confirmation message.
func Success(key, message string, values map[string]any) Outcome {
	return newOutcome(SeveritySuccess, key, message, values)
}

// Warning returns an advisory outcome. Warnings never block a form.
func Warning(key, message string, values map[string]any) Outcome {
	return newOutcome(SeverityWarning, key, message, values)
}

// Invalid returns an outcome that blocks form submission.
func Invalid(key, message string, values map[string]any) Outcome {
	return newOutcome(SeverityError, key, message, values)
}

func newOutcome(severity Severity, key, message string, values map[string]any) Outcome {
	return Outcome{
		Severity:          severity,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

// Blocks reports whether the outcome prevents form submission.
func (o Outcome) Blocks() bool {
	return o.Severity == SeverityError
}

// HasMessage reports whether the outcome should be rendered.
func (o Outcome) HasMessage() bool {
	return o.Severity != SeverityNone && o.Message != ""
}

func (o Outcome) String() string {
	if !o.HasMessage() {
		return o.Severity.String()
	}
	return fmt.Sprintf("%s: %s", o.Severity, o.Message)
}

// Rule represents a single validation rule.
// Fail is reported when Check returns false.
type Rule struct {
	Check func() bool
	Fail  Outcome
}

// First evaluates rules in order and returns the outcome of the first failing
// rule. When every rule passes, success is returned.
func First(success Outcome, rules ...Rule) Outcome {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Fail
		}
	}
	return success
}
