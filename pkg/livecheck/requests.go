package livecheck

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/vetform/handler"
)

// maxBodySize bounds request bodies of /check and /forms.
const maxBodySize = 64 << 10

// PageRequest is the query of the demo page.
type PageRequest struct {
	// Saved is the id of the form that was just submitted.
	Saved string
}

// CheckRequest is one field event sent by the page.
type CheckRequest struct {
	Field   string
	Kind    string
	Value   string
	Trigger string
}

// SubmitRequest is a full form submission.
type SubmitRequest struct {
	Form   string
	Values url.Values
}

func bindPage(r *http.Request, v any) error {
	req, ok := v.(*PageRequest)
	if !ok {
		return handler.ErrBinderNotApplicable
	}
	req.Saved = r.URL.Query().Get("saved")
	return nil
}

// bindCheckForm reads form-encoded events. The field is named by the
// "field" parameter; its value is "value" or, when the whole form is
// posted, the field's own entry.
func bindCheckForm(r *http.Request, v any) error {
	req, ok := v.(*CheckRequest)
	if !ok || !isForm(r) {
		return handler.ErrBinderNotApplicable
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", handler.ErrBadRequest, err)
	}

	req.Field = strings.TrimSpace(r.Form.Get("field"))
	req.Kind = r.Form.Get("kind")
	req.Trigger = r.Form.Get("trigger")
	if r.Form.Has("value") {
		req.Value = r.Form.Get("value")
	} else {
		req.Value = r.Form.Get(req.Field)
	}
	return nil
}

// bindCheckSignals reads datastar JSON signals. The field is named by the
// query string; its value is the signal of the same name.
func bindCheckSignals(r *http.Request, v any) error {
	req, ok := v.(*CheckRequest)
	if !ok || isForm(r) {
		return handler.ErrBinderNotApplicable
	}
	signals, err := readSignals(r)
	if err != nil {
		return err
	}

	q := r.URL.Query()
	req.Field = strings.TrimSpace(q.Get("field"))
	req.Kind = q.Get("kind")
	req.Trigger = q.Get("trigger")
	req.Value = signals.Get(req.Field)
	return nil
}

func bindSubmitForm(r *http.Request, v any) error {
	req, ok := v.(*SubmitRequest)
	if !ok || !isForm(r) {
		return handler.ErrBinderNotApplicable
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", handler.ErrBadRequest, err)
	}
	req.Form = chi.URLParam(r, "form")
	req.Values = r.PostForm
	return nil
}

func bindSubmitSignals(r *http.Request, v any) error {
	req, ok := v.(*SubmitRequest)
	if !ok || isForm(r) {
		return handler.ErrBinderNotApplicable
	}
	signals, err := readSignals(r)
	if err != nil {
		return err
	}
	req.Form = chi.URLParam(r, "form")
	req.Values = signals
	return nil
}

func isForm(r *http.Request) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return ct == "application/x-www-form-urlencoded" || ct == "multipart/form-data"
}

// readSignals flattens the top-level datastar signals into url.Values.
// Nested objects, such as the validity map, are skipped.
func readSignals(r *http.Request) (url.Values, error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)
	}
	raw := map[string]any{}
	if err := datastar.ReadSignals(r, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", handler.ErrBadRequest, err)
	}

	values := make(url.Values, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			values.Set(k, val)
		case float64:
			values.Set(k, strconv.FormatFloat(val, 'f', -1, 64))
		case bool:
			values.Set(k, strconv.FormatBool(val))
		}
	}
	return values, nil
}
