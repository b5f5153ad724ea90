package form

import (
	"context"

	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// FieldOutcome is the outcome of one recognised field.
type FieldOutcome struct {
	Field    field.Handle
	Category field.Category
	Outcome  validator.Outcome
}

// Result aggregates one validation pass. It is created per submission
// attempt and not retained.
type Result struct {
	Outcomes   []FieldOutcome
	Recognized int
	// Err is set when the pass was interrupted by its context.
	Err error
}

// Valid reports whether the pass completed and no outcome blocks submission.
func (r Result) Valid() bool {
	if r.Err != nil {
		return false
	}
	for _, fo := range r.Outcomes {
		if fo.Outcome.Blocks() {
			return false
		}
	}
	return true
}

// FirstInvalid returns the first blocking field in document order.
func (r Result) FirstInvalid() (field.Handle, bool) {
	for _, fo := range r.Outcomes {
		if fo.Outcome.Blocks() {
			return fo.Field, true
		}
	}
	return nil, false
}

// Invalid returns the blocking outcomes in document order.
func (r Result) Invalid() []FieldOutcome {
	var out []FieldOutcome
	for _, fo := range r.Outcomes {
		if fo.Outcome.Blocks() {
			out = append(out, fo)
		}
	}
	return out
}

// Counts returns the number of outcomes per severity.
func (r Result) Counts() map[validator.Severity]int {
	counts := make(map[validator.Severity]int, 4)
	for _, fo := range r.Outcomes {
		counts[fo.Outcome.Severity]++
	}
	return counts
}

// Validator runs every recognised field of a form through its validator.
type Validator struct {
	checker  *field.Checker
	renderer feedback.Renderer
}

// NewValidator creates a Validator. A nil renderer disables painting.
func NewValidator(checker *field.Checker, renderer feedback.Renderer) *Validator {
	if checker == nil {
		checker = field.NewChecker()
	}
	return &Validator{checker: checker, renderer: renderer}
}

// Recognized returns the number of classified fields in f.
func (v *Validator) Recognized(f Form) int {
	n := 0
	for _, h := range f.Fields() {
		if v.checker.Classify(h).Classified() {
			n++
		}
	}
	return n
}

// Validate classifies and validates every field of f, rendering each
// outcome. Unclassified fields are neither validated nor rendered.
// A cancelled context stops the pass and the result is not valid.
func (v *Validator) Validate(ctx context.Context, f Form) Result {
	var res Result
	for _, h := range f.Fields() {
		if err := ctx.Err(); err != nil {
			res.Err = err
			break
		}

		cat, out := v.checker.Check(h)
		if !cat.Classified() {
			continue
		}

		res.Recognized++
		res.Outcomes = append(res.Outcomes, FieldOutcome{Field: h, Category: cat, Outcome: out})
		if v.renderer != nil {
			v.renderer.Render(h, out)
		}
	}
	return res
}
