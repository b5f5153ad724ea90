//go:build js && wasm

// Command wasm attaches live validation to the forms of the page it is
// loaded into. Build it with GOOS=js GOARCH=wasm and load it next to
// wasm_exec.js; forms added later can be attached with vetform.attach(form).
package main

import (
	"context"
	"log/slog"
	"syscall/js"

	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
	"github.com/dmitrymomot/vetform/pkg/gate"
	"github.com/dmitrymomot/vetform/pkg/i18n"
	"github.com/dmitrymomot/vetform/pkg/logger"
	"github.com/dmitrymomot/vetform/pkg/watch"
)

// app holds what every attached form shares.
type app struct {
	doc        js.Value
	checker    *field.Checker
	translator *i18n.Translator
	lang       string
	log        *slog.Logger
	bus        *watch.Bus
	inputs     map[string]*domInput
	funcs      []js.Func
}

func main() {
	ctx := context.Background()
	doc := js.Global().Get("document")

	log := logger.New(
		logger.WithOutput(consoleWriter{}),
		logger.WithFormat(logger.FormatText),
		logger.WithAttr(logger.Component("wasm")),
	)

	lang := doc.Get("documentElement").Call("getAttribute", "lang")
	a := &app{
		doc:     doc,
		checker: field.NewChecker(),
		log:     log,
		bus:     watch.NewBus(),
		inputs:  make(map[string]*domInput),
	}
	if lang.Truthy() {
		a.lang = lang.String()
	}

	tr, err := i18n.Bundled(ctx, i18n.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "translations unavailable, using bundled messages", logger.Error(err))
	} else {
		a.translator = tr
		if a.lang == "" {
			a.lang = tr.DefaultLanguage()
		}
	}

	localize := feedback.Localized(a.translator, a.lang)
	watch.Register(a.bus, newDOMRenderer(doc, localize), watch.WithChecker(a.checker), watch.WithLogger(log))

	forms := doc.Get("forms")
	for i := 0; i < forms.Length(); i++ {
		a.attach(forms.Index(i))
	}

	attach := a.keep(js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			a.attach(args[0])
		}
		return nil
	}))
	js.Global().Set("vetform", js.ValueOf(map[string]any{"attach": attach}))

	log.InfoContext(ctx, "live validation attached", slog.Int("forms", forms.Length()))
	select {}
}

// attach wires the field listeners and the submission gate of one form.
func (a *app) attach(el js.Value) {
	if !el.Truthy() || el.Get("dataset").Get("vetform").Truthy() {
		return
	}
	el.Get("dataset").Set("vetform", "on")

	f := newDOMForm(el, a.input)
	for _, h := range f.Fields() {
		in := h.(*domInput)
		for _, name := range []string{"input", "change", "focusout"} {
			trigger, _ := watch.ParseTrigger(name)
			in.el.Call("addEventListener", name, a.keep(js.FuncOf(func(js.Value, []js.Value) any {
				a.bus.Emit(watch.Event{Field: in, Trigger: trigger})
				return nil
			})))
		}
	}

	localize := feedback.Localized(a.translator, a.lang)
	message := gate.DefaultMessage
	if a.translator != nil {
		message = a.translator.Td(a.lang, gate.MessageKey, gate.DefaultMessage)
	}
	g := gate.New(
		form.NewValidator(a.checker, newDOMRenderer(a.doc, localize)),
		newDOMAlerts(a.doc, el),
		gate.WithMessage(message),
		gate.WithLogger(a.log),
	)

	el.Call("addEventListener", "submit", a.keep(js.FuncOf(func(_ js.Value, args []js.Value) any {
		if g.Submit(context.Background(), f) == gate.Block && len(args) > 0 {
			args[0].Call("preventDefault")
		}
		return nil
	})))

	js.Global().Call("addEventListener", "pagehide", a.keep(js.FuncOf(func(js.Value, []js.Value) any {
		_ = g.Close()
		return nil
	})))
}

// input returns the handle of el, reusing it across forms and events.
func (a *app) input(el js.Value) *domInput {
	key := el.Get("id").String()
	if key == "" {
		return newDOMInput(el)
	}
	if in, ok := a.inputs[key]; ok {
		return in
	}
	in := newDOMInput(el)
	a.inputs[key] = in
	return in
}

// keep retains fn for the lifetime of the page.
func (a *app) keep(fn js.Func) js.Func {
	a.funcs = append(a.funcs, fn)
	return fn
}

// consoleWriter sends log lines to the browser console.
type consoleWriter struct{}

func (consoleWriter) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", string(p))
	return len(p), nil
}
