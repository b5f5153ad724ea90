package feedback

import (
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/i18n"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// Renderer paints validation outcomes. Implementations keep at most one live
// message per field.
type Renderer interface {
	// Render replaces any previous feedback for h with o.
	// An outcome with nothing to report behaves like Clear.
	Render(h field.Handle, o validator.Outcome)

	// Clear removes the message and both validity states of h.
	// Clearing a field without feedback is a no-op.
	Clear(h field.Handle)
}

// State is the visual validity of a field.
type State int

const (
	StateNeutral State = iota
	StateValid
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return ""
	}
}

// StateOf maps an outcome to the field state it paints.
// Warnings leave the field neutral.
func StateOf(o validator.Outcome) State {
	switch o.Severity {
	case validator.SeverityError:
		return StateInvalid
	case validator.SeveritySuccess:
		return StateValid
	default:
		return StateNeutral
	}
}

// InputClass returns the class added to the input for s.
func InputClass(s State) string {
	switch s {
	case StateValid:
		return "is-valid"
	case StateInvalid:
		return "is-invalid"
	default:
		return ""
	}
}

// Icon returns the icon classes for a severity.
func Icon(s validator.Severity) string {
	switch s {
	case validator.SeverityError:
		return "fas fa-exclamation-circle"
	case validator.SeverityWarning:
		return "fas fa-exclamation-triangle"
	case validator.SeveritySuccess:
		return "fas fa-check-circle"
	default:
		return ""
	}
}

// FeedbackID returns the element id of the message slot for a field.
func FeedbackID(name string) string {
	return name + "-feedback"
}

// Localize returns the text shown for an outcome.
type Localize func(validator.Outcome) string

// OwnMessage returns the outcome's bundled message.
func OwnMessage(o validator.Outcome) string {
	return o.Message
}

// Localized renders outcome messages through tr in lang.
func Localized(tr *i18n.Translator, lang string) Localize {
	if tr == nil {
		return OwnMessage
	}
	return func(o validator.Outcome) string {
		return tr.Outcome(lang, o)
	}
}
