package livecheck

import (
	"net/http"
	"net/url"

	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
)

// FieldDef describes one input of a catalogue form.
type FieldDef struct {
	Name string
	Kind string
}

// Definition describes a form served by the demo page.
type Definition struct {
	ID     string
	Method string
	Fields []FieldDef
}

// Bind builds the submitted form from request values in field order.
// Fields missing from values are submitted empty.
func (d Definition) Bind(values url.Values) *form.Static {
	inputs := make([]field.Handle, 0, len(d.Fields))
	for _, f := range d.Fields {
		inputs = append(inputs, field.NewInput(f.Name, f.Kind, values.Get(f.Name)))
	}
	method := d.Method
	if method == "" {
		method = http.MethodPost
	}
	return form.New(d.ID, method, inputs...)
}

// AlertsID returns the element id the summary alert is prepended to.
func (d Definition) AlertsID() string {
	return d.ID + "-alerts"
}

// Catalogue is the fixed set of forms known to the server.
type Catalogue struct {
	forms []Definition
	index map[string]int
}

// NewCatalogue creates a catalogue. Later forms with a duplicate id are ignored.
func NewCatalogue(forms ...Definition) *Catalogue {
	c := &Catalogue{index: make(map[string]int, len(forms))}
	for _, f := range forms {
		if _, ok := c.index[f.ID]; ok {
			continue
		}
		c.index[f.ID] = len(c.forms)
		c.forms = append(c.forms, f)
	}
	return c
}

// DefaultCatalogue returns the owner, pet, appointment and product forms.
func DefaultCatalogue() *Catalogue {
	return NewCatalogue(
		Definition{ID: "owner", Method: http.MethodPost, Fields: []FieldDef{
			{Name: "nombre_propietario", Kind: "text"},
			{Name: "telefono", Kind: "tel"},
			{Name: "email", Kind: "email"},
		}},
		Definition{ID: "pet", Method: http.MethodPost, Fields: []FieldDef{
			{Name: "nombre_mascota", Kind: "text"},
			{Name: "peso", Kind: "number"},
			{Name: "edad", Kind: "number"},
		}},
		Definition{ID: "appointment", Method: http.MethodPost, Fields: []FieldDef{
			{Name: "fecha_hora", Kind: "datetime-local"},
			{Name: "notas", Kind: "text"},
		}},
		Definition{ID: "product", Method: http.MethodPost, Fields: []FieldDef{
			{Name: "codigo", Kind: "text"},
			{Name: "nombre_producto", Kind: "text"},
			{Name: "precio", Kind: "number"},
			{Name: "precio_estimado", Kind: "number"},
			{Name: "stock", Kind: "number"},
		}},
	)
}

// Forms returns the forms in declaration order.
func (c *Catalogue) Forms() []Definition {
	return c.forms
}

// Form returns the form with the given id.
func (c *Catalogue) Form(id string) (Definition, bool) {
	i, ok := c.index[id]
	if !ok {
		return Definition{}, false
	}
	return c.forms[i], true
}

// Kind returns the input type of the first catalogue field called name,
// or "text" when no form has it.
func (c *Catalogue) Kind(name string) string {
	for _, f := range c.forms {
		for _, fs := range f.Fields {
			if fs.Name == name {
				return fs.Kind
			}
		}
	}
	return "text"
}
