//go:build js && wasm

package main

import (
	"context"
	"strings"
	"syscall/js"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
	"github.com/dmitrymomot/vetform/pkg/gate"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// domInput is a field.Handle over an input, select or textarea element.
type domInput struct {
	el js.Value
}

func newDOMInput(el js.Value) *domInput { return &domInput{el: el} }

func (d *domInput) Name() string {
	if name := d.el.Get("name").String(); name != "" {
		return name
	}
	return d.el.Get("id").String()
}

func (d *domInput) Kind() string { return d.el.Get("type").String() }

func (d *domInput) Value() string { return d.el.Get("value").String() }

func (d *domInput) SetValue(v string) { d.el.Set("value", v) }

// domForm is a form.Form over a form element.
type domForm struct {
	el     js.Value
	fields []field.Handle
}

func newDOMForm(el js.Value, input func(js.Value) *domInput) *domForm {
	f := &domForm{el: el}
	elements := el.Get("elements")
	for i := 0; i < elements.Length(); i++ {
		c := elements.Index(i)
		switch strings.ToLower(c.Get("tagName").String()) {
		case "input", "select", "textarea":
		default:
			continue
		}
		switch c.Get("type").String() {
		case "submit", "button", "reset", "hidden":
			continue
		}
		f.fields = append(f.fields, input(c))
	}
	return f
}

// Method returns the declared method, "get" when absent.
func (f *domForm) Method() string {
	if m := f.el.Call("getAttribute", "method"); m.Truthy() {
		return m.String()
	}
	return "get"
}

func (f *domForm) Fields() []field.Handle { return f.fields }

var _ form.Form = (*domForm)(nil)

// domRenderer paints feedback next to the input, the same markup the
// server patches in.
type domRenderer struct {
	doc      js.Value
	localize feedback.Localize
}

func newDOMRenderer(doc js.Value, localize feedback.Localize) *domRenderer {
	return &domRenderer{doc: doc, localize: localize}
}

func (r *domRenderer) Render(h field.Handle, o validator.Outcome) {
	text := ""
	if o.Severity != validator.SeverityNone {
		text = r.localize(o)
	}
	if text == "" {
		r.Clear(h)
		return
	}
	r.paint(h, feedback.Message(h.Name(), o.Severity, text), feedback.StateOf(o))
}

func (r *domRenderer) Clear(h field.Handle) {
	r.paint(h, feedback.Slot(h.Name()), feedback.StateNeutral)
}

func (r *domRenderer) paint(h field.Handle, c templ.Component, s feedback.State) {
	in, ok := h.(*domInput)
	if !ok {
		return
	}
	classes := in.el.Get("classList")
	classes.Call("remove", feedback.InputClass(feedback.StateValid), feedback.InputClass(feedback.StateInvalid))
	if cls := feedback.InputClass(s); cls != "" {
		classes.Call("add", cls)
	}

	html, err := renderString(c)
	if err != nil {
		return
	}
	slot := r.doc.Call("getElementById", feedback.FeedbackID(h.Name()))
	if !slot.Truthy() {
		in.el.Call("insertAdjacentHTML", "afterend", html)
		return
	}
	slot.Set("outerHTML", html)
}

// domAlerts shows the summary alert at the top of a form. Its close
// button dismisses the alert through the gate.
type domAlerts struct {
	doc     js.Value
	form    js.Value
	dismiss func(gate.AlertID)
	closers map[gate.AlertID]js.Func
}

func newDOMAlerts(doc, form js.Value) *domAlerts {
	return &domAlerts{doc: doc, form: form, closers: make(map[gate.AlertID]js.Func)}
}

func (a *domAlerts) OnClose(dismiss func(gate.AlertID)) {
	a.dismiss = dismiss
}

func (a *domAlerts) Show(_ form.Form, id gate.AlertID, message string) {
	html, err := renderString(feedback.Alert(string(id), message))
	if err != nil {
		return
	}
	a.form.Call("insertAdjacentHTML", "afterbegin", html)

	btn := a.doc.Call("getElementById", string(id)).Call("querySelector", ".btn-close")
	if !btn.Truthy() || a.dismiss == nil {
		return
	}
	closer := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		// The gate locks; callbacks must not block the event loop.
		go a.dismiss(id)
		return nil
	})
	a.closers[id] = closer
	btn.Call("addEventListener", "click", closer)
}

func (a *domAlerts) Remove(id gate.AlertID) {
	if el := a.doc.Call("getElementById", string(id)); el.Truthy() {
		el.Call("remove")
	}
	if closer, ok := a.closers[id]; ok {
		delete(a.closers, id)
		closer.Release()
	}
}

func (a *domAlerts) Focus(h field.Handle) {
	if in, ok := h.(*domInput); ok {
		in.el.Call("focus")
	}
}

func renderString(c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
