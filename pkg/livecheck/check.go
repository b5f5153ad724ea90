package livecheck

import (
	"github.com/dmitrymomot/vetform/handler"
	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/watch"
)

// CheckResult is the JSON view of a checked field.
type CheckResult struct {
	Field    string `json:"field"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	State    string `json:"state,omitempty"`
	Message  string `json:"message,omitempty"`
	Value    string `json:"value"`
}

// check runs one field event through a watch subscription and returns the
// resulting feedback. Without a trigger the field is checked the way the
// page would on leaving it.
func (s *Server) check(ctx handler.Context, req CheckRequest) handler.Response {
	if req.Field == "" {
		return handler.Error(handler.ErrBadRequest)
	}
	kind := req.Kind
	if kind == "" {
		kind = s.catalogue.Kind(req.Field)
	}
	input := field.NewInput(req.Field, kind, req.Value)

	cat := s.checker.Classify(input)
	trigger, ok := watch.ParseTrigger(req.Trigger)
	if !ok {
		trigger = leaveTrigger(cat)
	}
	ev := watch.Event{Field: input, Trigger: trigger}

	if !cat.Classified() {
		return handler.Empty()
	}

	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			p := feedback.NewPatcher(stream.SSE(), feedback.WithPatcherLocalize(s.localize(stream)))
			s.emit(p, ev)
			if input.Value() != req.Value {
				p.Signals(map[string]any{req.Field: input.Value()})
			}
			return p.Err()
		})
	}

	board := feedback.NewBoard(feedback.WithBoardLocalize(s.localize(ctx)))
	s.emit(board, ev)
	view := board.View(req.Field)

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(CheckResult{
			Field:    req.Field,
			Category: cat.String(),
			Severity: view.Severity.String(),
			State:    view.State.String(),
			Message:  view.Message,
			Value:    input.Value(),
		})
	}
	if !view.HasMessage() {
		return handler.Templ(feedback.Slot(req.Field))
	}
	return handler.Templ(feedback.Message(req.Field, view.Severity, view.Message))
}

// emit delivers ev to a one-shot subscription painting through r.
func (s *Server) emit(r feedback.Renderer, ev watch.Event) {
	bus := watch.NewBus()
	sub := watch.Register(bus, s.observe(r), watch.WithChecker(s.checker), watch.WithLogger(s.logger))
	defer sub.Close()
	bus.Emit(ev)
}

// leaveTrigger is the event that validates cat when the user leaves it.
func leaveTrigger(cat field.Category) watch.Trigger {
	if cat == field.AppointmentDateTime {
		return watch.TriggerChange
	}
	return watch.TriggerBlur
}
