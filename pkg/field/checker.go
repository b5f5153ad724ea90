package field

import (
	"strings"
	"time"

	"github.com/dmitrymomot/vetform/pkg/sanitizer"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// Checker classifies fields and runs the matching validator.
type Checker struct {
	classifier *Classifier
	now        func() time.Time
	location   *time.Location
}

// Option configures a Checker.
type Option func(*Checker)

// WithClassifier replaces the default classifier.
func WithClassifier(c *Classifier) Option {
	return func(ch *Checker) {
		if c != nil {
			ch.classifier = c
		}
	}
}

// WithClock sets the time source used by appointment checks.
func WithClock(now func() time.Time) Option {
	return func(ch *Checker) {
		if now != nil {
			ch.now = now
		}
	}
}

// WithLocation sets the clinic time zone used for wall-clock appointment values.
func WithLocation(loc *time.Location) Option {
	return func(ch *Checker) {
		if loc != nil {
			ch.location = loc
		}
	}
}

// NewChecker creates a Checker with the default rules, time.Now and time.Local.
func NewChecker(opts ...Option) *Checker {
	ch := &Checker{
		classifier: NewClassifier(),
		now:        time.Now,
		location:   time.Local,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// Classify returns the category of h.
func (c *Checker) Classify(h Handle) Category {
	return c.classifier.Classify(h.Name(), h.Kind())
}

// Check classifies h and validates its current value.
// Unclassified fields yield validator.Valid().
func (c *Checker) Check(h Handle) (Category, validator.Outcome) {
	cat := c.Classify(h)
	return cat, c.Validate(cat, h.Name(), h.Value())
}

// Validate runs the validator for cat. The field name supplies the
// "propietario" and "estimado" modifiers.
func (c *Checker) Validate(cat Category, name, value string) validator.Outcome {
	switch cat {
	case Name:
		return validator.Name(value, strings.Contains(name, "propietario"))
	case Phone:
		return validator.Phone(value)
	case Email:
		return validator.Email(value)
	case Price:
		return validator.Price(value, strings.Contains(name, "estimado"))
	case Weight:
		return validator.Weight(value)
	case Age:
		return validator.Age(value)
	case AppointmentDateTime:
		return validator.Appointment(value, c.now().In(c.location))
	case ProductCode:
		return validator.ProductCode(value)
	case Stock:
		return validator.Stock(value)
	default:
		return validator.Valid()
	}
}

// InputTransform returns the live-formatting transform for cat, or nil when
// the category has none.
func InputTransform(cat Category) sanitizer.Transform {
	switch cat {
	case Phone:
		return sanitizer.PhoneInput
	case ProductCode:
		return sanitizer.ProductCodeInput
	default:
		return nil
	}
}

// Normalize applies the live-formatting transform of cat to h in place.
// It reports whether the value changed.
func Normalize(cat Category, h Handle) bool {
	transform := InputTransform(cat)
	if transform == nil {
		return false
	}
	before := h.Value()
	after := transform(before)
	if after == before {
		return false
	}
	h.SetValue(after)
	return true
}
