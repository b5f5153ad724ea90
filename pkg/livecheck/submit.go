package livecheck

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrymomot/vetform/handler"
	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
	"github.com/dmitrymomot/vetform/pkg/gate"
)

// FocusSignal names the field the page should focus.
const FocusSignal = "focus"

// submit gates a full form submission. DataStar clients keep the stream
// open until the summary alert has been removed; regular clients get the
// alert and messages with status 422.
func (s *Server) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	def, ok := s.catalogue.Form(req.Form)
	if !ok {
		return handler.Error(handler.ErrNotFound)
	}
	f := def.Bind(req.Values)

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			p := feedback.NewPatcher(stream.SSE(), feedback.WithPatcherLocalize(s.localize(stream)))
			g := s.newGate(stream, p, &streamAlerts{patcher: p, target: "#" + def.AlertsID()})
			defer g.Close()

			if g.Submit(stream, f) == gate.Allow {
				if err := p.Err(); err != nil {
					return err
				}
				return stream.SSE().Redirect(savedURL(def))
			}

			select {
			case <-g.Released():
			case <-stream.Done():
			}
			return p.Err()
		})
	}

	board := feedback.NewBoard(feedback.WithBoardLocalize(s.localize(ctx)))
	alerts := &recordedAlerts{}
	g := s.newGate(ctx, board, alerts)
	defer g.Close()

	if g.Submit(ctx, f) == gate.Allow {
		if handler.WantsJSON(ctx.Request()) {
			return handler.JSON(map[string]any{"form": def.ID, "saved": true})
		}
		return handler.Redirect(savedURL(def))
	}

	id, message, focus := alerts.last()
	if handler.WantsJSON(ctx.Request()) {
		details := make(map[string][]string)
		for _, name := range board.Fields() {
			if v := board.View(name); v.State == feedback.StateInvalid {
				details[name] = []string{v.Message}
			}
		}
		return handler.JSONError(&handler.ErrorDetail{
			Code:    "validation_error",
			Message: message,
			Details: details,
		},
			handler.WithJSONStatus(http.StatusUnprocessableEntity),
			handler.WithJSONMeta(map[string]any{FocusSignal: focus}),
		)
	}

	patches := []handler.TemplPatch{
		handler.Patch(feedback.Alert(string(id), message)),
	}
	for _, h := range f.Fields() {
		if v := board.View(h.Name()); v.HasMessage() {
			patches = append(patches, handler.Patch(feedback.Message(h.Name(), v.Severity, v.Message)))
		}
	}
	return handler.TemplMultiWithStatus(http.StatusUnprocessableEntity, patches...)
}

func savedURL(def Definition) string {
	return "/?saved=" + url.QueryEscape(def.ID)
}

// streamAlerts paints the summary alert through a datastar patcher.
type streamAlerts struct {
	patcher *feedback.Patcher
	target  string
}

func (a *streamAlerts) Show(_ form.Form, id gate.AlertID, message string) {
	a.patcher.ShowAlert(a.target, string(id), message)
}

func (a *streamAlerts) Remove(id gate.AlertID) {
	a.patcher.RemoveAlert(string(id))
}

func (a *streamAlerts) Focus(h field.Handle) {
	a.patcher.Signals(map[string]any{FocusSignal: h.Name()})
}

// recordedAlerts keeps the last alert for a one-shot response.
type recordedAlerts struct {
	mu      sync.Mutex
	id      gate.AlertID
	message string
	focus   string
}

func (a *recordedAlerts) Show(_ form.Form, id gate.AlertID, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.id, a.message = id, message
}

func (a *recordedAlerts) Remove(gate.AlertID) {}

func (a *recordedAlerts) Focus(h field.Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.focus = h.Name()
}

func (a *recordedAlerts) last() (gate.AlertID, string, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.id, a.message, a.focus
}
