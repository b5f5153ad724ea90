package field

import "strings"

// Matcher reports whether a field with the given name and kind matches a rule.
type Matcher func(name, kind string) bool

// Rule assigns Category to fields accepted by Match.
type Rule struct {
	Category Category
	Match    Matcher
}

// KindIs matches fields by input kind, ignoring case.
func KindIs(kind string) Matcher {
	return func(_, k string) bool {
		return strings.EqualFold(k, kind)
	}
}

// NameContains matches fields whose name contains substr.
func NameContains(substr string) Matcher {
	return func(name, _ string) bool {
		return strings.Contains(name, substr)
	}
}

// NameIs matches fields whose name equals exactly name.
func NameIs(name string) Matcher {
	return func(n, _ string) bool {
		return n == name
	}
}

// DefaultRules returns the clinic form rules in evaluation order.
// The kind-based Email rule comes first so it wins over any name rule.
func DefaultRules() []Rule {
	return []Rule{
		{Category: Email, Match: KindIs("email")},
		{Category: Name, Match: NameContains("nombre")},
		{Category: Phone, Match: NameContains("telefono")},
		{Category: Price, Match: NameContains("precio")},
		{Category: Weight, Match: NameIs("peso")},
		{Category: Age, Match: NameIs("edad")},
		{Category: AppointmentDateTime, Match: NameIs("fecha_hora")},
		{Category: ProductCode, Match: NameIs("codigo")},
		{Category: Stock, Match: NameIs("stock")},
	}
}

// Classifier maps field metadata to a Category using an ordered rule list.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier. Without rules, DefaultRules is used.
func NewClassifier(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	clean := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Match != nil && r.Category.Classified() {
			clean = append(clean, r)
		}
	}
	return &Classifier{rules: clean}
}

// Classify returns the category of the first matching rule, or Unclassified.
func (c *Classifier) Classify(name, kind string) Category {
	for _, r := range c.rules {
		if r.Match(name, kind) {
			return r.Category
		}
	}
	return Unclassified
}
