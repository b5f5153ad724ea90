package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Field records a form field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Form records a form identifier under "form".
func Form(id string) slog.Attr {
	return slog.String("form", id)
}

// Category records a field category under "category".
// Accepts anything with a String method, such as field.Category.
func Category(c fmt.Stringer) slog.Attr {
	return slog.String("category", c.String())
}

// Severity records an outcome severity under "severity".
func Severity(s fmt.Stringer) slog.Attr {
	return slog.String("severity", s.String())
}

// Trigger records the event that caused a validation under "trigger".
func Trigger(t fmt.Stringer) slog.Attr {
	return slog.String("trigger", t.String())
}

// Decision records a submission decision under "decision".
func Decision(d fmt.Stringer) slog.Attr {
	return slog.String("decision", d.String())
}

// AlertID records a summary alert identifier under "alert_id".
func AlertID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("alert_id", id)
}
