package feedback

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/vetform/pkg/validator"
)

// Message renders the feedback element of a field.
//
//	<div id="peso-feedback" class="validation-message warning" role="status">
//		<i class="fas fa-exclamation-triangle"></i> Peso alto. Verifique que sea correcto.
//	</div>
func Message(name string, severity validator.Severity, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div id="`)
		sb.WriteString(templ.EscapeString(FeedbackID(name)))
		sb.WriteString(`" class="validation-message `)
		sb.WriteString(severity.String())
		sb.WriteString(`" role="status"><i class="`)
		sb.WriteString(Icon(severity))
		sb.WriteString(`"></i> `)
		sb.WriteString(templ.EscapeString(text))
		sb.WriteString(`</div>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Slot renders the empty placeholder a field's message is patched into.
func Slot(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="`+templ.EscapeString(FeedbackID(name))+`" class="validation-slot"></div>`)
		return err
	})
}

// Alert renders the dismissable summary shown above a blocked form.
func Alert(id, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div id="`)
		sb.WriteString(templ.EscapeString(id))
		sb.WriteString(`" class="alert alert-danger alert-dismissible" role="alert"><i class="`)
		sb.WriteString(Icon(validator.SeverityError))
		sb.WriteString(`"></i> `)
		sb.WriteString(templ.EscapeString(text))
		sb.WriteString(`<button type="button" class="btn-close" aria-label="Cerrar" data-on-click="el.parentElement.remove()"></button></div>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Empty renders nothing. It is the payload of removal patches.
func Empty() templ.Component {
	return templ.NopComponent
}
