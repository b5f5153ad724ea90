package feedback_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

var _ feedback.Stream = (*datastar.ServerSentEventGenerator)(nil)

func newSSE(t *testing.T) (*datastar.ServerSentEventGenerator, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/check", nil)
	r.Header.Set("Accept", "text/event-stream")
	return datastar.NewSSE(w, r), w
}

func TestPatcherRender(t *testing.T) {
	t.Parallel()

	sse, w := newSSE(t)
	p := feedback.NewPatcher(sse)

	p.Render(field.NewInput("peso", "number", "0"), validator.Weight("0"))
	require.NoError(t, p.Err())

	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, "selector #peso-feedback")
	assert.Contains(t, body, `class="validation-message error"`)
	assert.Contains(t, body, "El peso debe ser mayor a 0.")
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `{"validity":{"peso":"invalid"}}`)
}

func TestPatcherClear(t *testing.T) {
	t.Parallel()

	sse, w := newSSE(t)
	p := feedback.NewPatcher(sse)

	p.Clear(field.NewInput("edad", "number", ""))
	require.NoError(t, p.Err())

	body := w.Body.String()
	assert.Contains(t, body, `class="validation-slot"`)
	assert.Contains(t, body, `{"validity":{"edad":""}}`)
	assert.NotContains(t, body, "validation-message")
}

func TestPatcherRenderNothingClears(t *testing.T) {
	t.Parallel()

	sse, w := newSSE(t)
	p := feedback.NewPatcher(sse)

	p.Render(field.NewInput("stock", "number", ""), validator.Stock(""))
	require.NoError(t, p.Err())
	assert.Contains(t, w.Body.String(), `class="validation-slot"`)
}

func TestPatcherAlert(t *testing.T) {
	t.Parallel()

	sse, w := newSSE(t)
	p := feedback.NewPatcher(sse)

	p.ShowAlert("#form-mascota", "alert-1", "Por favor, corrija los errores antes de continuar.")
	p.RemoveAlert("alert-1")
	require.NoError(t, p.Err())

	body := w.Body.String()
	assert.Contains(t, body, "selector #form-mascota")
	assert.Contains(t, body, "mode prepend")
	assert.Contains(t, body, "selector #alert-1")
	assert.Contains(t, body, "mode remove")
}

func TestPatcherSignals(t *testing.T) {
	t.Parallel()

	sse, w := newSSE(t)
	p := feedback.NewPatcher(sse)

	p.Signals(map[string]any{"telefono": "+56 9 1234"})
	require.NoError(t, p.Err())
	assert.Contains(t, w.Body.String(), `{"telefono":"+56 9 1234"}`)
}

type failingStream struct {
	calls int
}

func (s *failingStream) PatchElementTempl(datastar.TemplComponent, ...datastar.PatchElementOption) error {
	s.calls++
	return errors.New("connection closed")
}

func (s *failingStream) PatchSignals([]byte, ...datastar.PatchSignalsOption) error {
	s.calls++
	return errors.New("connection closed")
}

func TestPatcherKeepsFirstError(t *testing.T) {
	t.Parallel()

	s := &failingStream{}
	p := feedback.NewPatcher(s)
	h := field.NewInput("peso", "number", "")

	p.Render(h, validator.Weight("0"))
	p.Clear(h)

	require.Error(t, p.Err())
	assert.True(t, strings.Contains(p.Err().Error(), "connection closed"))
	assert.Equal(t, 1, s.calls, "patches after a failure are skipped")
}
