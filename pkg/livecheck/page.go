package livecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/vetform/handler"
	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/i18n"
)

func (s *Server) page(ctx handler.Context, req PageRequest) handler.Response {
	return handler.Templ(s.pageComponent(req))
}

// initialSignals declares every bound signal so datastar can type them.
func (s *Server) initialSignals() string {
	signals := map[string]any{
		feedback.ValiditySignal: map[string]string{},
		FocusSignal:             "",
	}
	for _, f := range s.catalogue.Forms() {
		for _, fs := range f.Fields {
			signals[fs.Name] = ""
		}
	}
	data, _ := json.Marshal(signals)
	return string(data)
}

func (s *Server) pageComponent(req PageRequest) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<!DOCTYPE html><html lang="`)
		sb.WriteString(templ.EscapeString(i18n.GetLocale(ctx)))
		sb.WriteString(`"><head><meta charset="utf-8"><title>vetform</title>`)
		sb.WriteString(`<script type="module" src="`)
		sb.WriteString(templ.EscapeString(s.scriptURL))
		sb.WriteString(`"></script></head>`)
		sb.WriteString(`<body data-signals="`)
		sb.WriteString(templ.EscapeString(s.initialSignals()))
		sb.WriteString(`" data-effect="$`)
		sb.WriteString(FocusSignal)
		sb.WriteString(` &amp;&amp; document.getElementById($`)
		sb.WriteString(FocusSignal)
		sb.WriteString(`)?.focus()"><div id="toast-container"></div>`)

		for _, f := range s.catalogue.Forms() {
			s.writeForm(ctx, &sb, f, req.Saved == f.ID)
		}

		sb.WriteString(`</body></html>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func (s *Server) writeForm(ctx context.Context, sb *strings.Builder, f Definition, saved bool) {
	id := templ.EscapeString(f.ID)
	action := "/forms/" + id

	fmt.Fprintf(sb, `<section class="card"><h2>%s</h2>`, templ.EscapeString(s.text(ctx, "forms."+f.ID+".title", f.ID)))
	fmt.Fprintf(sb, `<div id="%s">`, templ.EscapeString(f.AlertsID()))
	if saved {
		fmt.Fprintf(sb, `<div class="alert alert-success" role="status">%s</div>`,
			templ.EscapeString(s.text(ctx, "forms.saved", "Formulario guardado.")))
	}
	sb.WriteString(`</div>`)

	fmt.Fprintf(sb, `<form id="%s" method="%s" action="%s" novalidate data-on-submit="@post('%s', {contentType: 'form'})">`,
		id, templ.EscapeString(strings.ToLower(f.Method)), action, action)

	for _, fs := range f.Fields {
		name := templ.EscapeString(fs.Name)
		check := func(trigger string) string {
			return fmt.Sprintf(`@post('/check?field=%s&amp;trigger=%s', {contentType: 'form'})`, name, trigger)
		}
		fmt.Fprintf(sb, `<div class="mb-3"><label for="%s" class="form-label">%s</label>`,
			name, templ.EscapeString(s.text(ctx, "forms."+f.ID+"."+fs.Name, fs.Name)))
		fmt.Fprintf(sb, `<input id="%s" name="%s" type="%s" class="form-control" data-bind-%s`,
			name, name, templ.EscapeString(fs.Kind), name)
		if cat := s.checker.Classify(field.NewInput(fs.Name, fs.Kind, "")); cat.Classified() {
			fmt.Fprintf(sb, ` data-class-is-valid="$%s.%s == 'valid'" data-class-is-invalid="$%s.%s == 'invalid'"`,
				feedback.ValiditySignal, name, feedback.ValiditySignal, name)
			fmt.Fprintf(sb, ` data-on-input__debounce.300ms="%s"`, check("input"))
			fmt.Fprintf(sb, ` data-on-%s="%s"`, leaveTrigger(cat), check(leaveTrigger(cat).String()))
		}
		sb.WriteString(`>`)
		sb.WriteString(`<div id="` + templ.EscapeString(feedback.FeedbackID(fs.Name)) + `" class="validation-slot"></div></div>`)
	}

	fmt.Fprintf(sb, `<button type="submit" class="btn btn-primary">%s</button></form></section>`,
		templ.EscapeString(s.text(ctx, "forms.submit", "Guardar")))
}

func errorPage(params handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html><body><main class="error"><h1>%d</h1><p>%s</p><a href="%s">↻</a></main></body></html>`,
			params.StatusCode, templ.EscapeString(params.Error), templ.EscapeString(params.RetryURL))
		return err
	})
}

func errorToast(params handler.ErrorToastParams) templ.Component {
	return feedback.Alert("toast-"+uuid.NewString(), params.Message)
}
