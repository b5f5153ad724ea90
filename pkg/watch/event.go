package watch

import "github.com/dmitrymomot/vetform/pkg/field"

// Trigger is the user interaction behind an Event.
type Trigger int

const (
	TriggerInput Trigger = iota + 1
	TriggerChange
	TriggerBlur
)

func (t Trigger) String() string {
	switch t {
	case TriggerInput:
		return "input"
	case TriggerChange:
		return "change"
	case TriggerBlur:
		return "blur"
	default:
		return "unknown"
	}
}

// ParseTrigger maps a DOM event name to a Trigger.
func ParseTrigger(name string) (Trigger, bool) {
	switch name {
	case "input":
		return TriggerInput, true
	case "change":
		return TriggerChange, true
	case "blur", "focusout":
		return TriggerBlur, true
	default:
		return 0, false
	}
}

// Event is one interaction with a field.
type Event struct {
	Field   field.Handle
	Trigger Trigger
}

// Source delivers field events. Subscribe returns a function that detaches fn.
type Source interface {
	Subscribe(fn func(Event)) (cancel func())
}
