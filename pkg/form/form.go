package form

import (
	"strings"

	"github.com/dmitrymomot/vetform/pkg/field"
)

// Form is a set of fields submitted with one HTTP method.
type Form interface {
	Method() string
	// Fields returns the input-like controls in document order.
	Fields() []field.Handle
}

// Static is an in-memory Form.
type Static struct {
	ID     string
	Verb   string
	Inputs []field.Handle
}

// New creates a Static form.
func New(id, method string, fields ...field.Handle) *Static {
	return &Static{ID: id, Verb: method, Inputs: fields}
}

func (s *Static) Method() string         { return s.Verb }
func (s *Static) Fields() []field.Handle { return s.Inputs }

// Field returns the field with the given name.
func (s *Static) Field(name string) (field.Handle, bool) {
	for _, h := range s.Inputs {
		if h.Name() == name {
			return h, true
		}
	}
	return nil, false
}

// IsPost reports whether f submits with POST. The comparison ignores case.
func IsPost(f Form) bool {
	return strings.EqualFold(strings.TrimSpace(f.Method()), "POST")
}
