package feedback

import (
	"encoding/json"
	"sync"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// ValiditySignal is the datastar signal holding per-field states.
// Inputs bind it with data-class, e.g.
// data-class-is-invalid="$validity.peso == 'invalid'".
const ValiditySignal = "validity"

// Stream is the part of a datastar SSE generator the Patcher needs.
// *datastar.ServerSentEventGenerator satisfies it.
type Stream interface {
	PatchElementTempl(c datastar.TemplComponent, opts ...datastar.PatchElementOption) error
	PatchSignals(signals []byte, opts ...datastar.PatchSignalsOption) error
}

// Patcher is a Renderer that streams feedback as datastar patches.
// Renderer methods do not return errors; the first failure is kept and
// reported by Err, and later patches are skipped.
type Patcher struct {
	stream   Stream
	localize Localize

	mu  sync.Mutex
	err error
}

// PatcherOption configures a Patcher.
type PatcherOption func(*Patcher)

// WithPatcherLocalize sets the message source of the patcher.
func WithPatcherLocalize(fn Localize) PatcherOption {
	return func(p *Patcher) {
		if fn != nil {
			p.localize = fn
		}
	}
}

// NewPatcher creates a Patcher writing to stream.
func NewPatcher(stream Stream, opts ...PatcherOption) *Patcher {
	p := &Patcher{
		stream:   stream,
		localize: OwnMessage,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render implements Renderer.
func (p *Patcher) Render(h field.Handle, o validator.Outcome) {
	text := ""
	if o.Severity != validator.SeverityNone {
		text = p.localize(o)
	}
	if text == "" {
		p.Clear(h)
		return
	}

	p.do(func() error {
		if err := p.stream.PatchElementTempl(
			Message(h.Name(), o.Severity, text),
			datastar.WithSelector("#"+FeedbackID(h.Name())),
			datastar.WithMode(datastar.ElementPatchModeOuter),
		); err != nil {
			return err
		}
		return p.patchState(h.Name(), StateOf(o))
	})
}

// Clear implements Renderer.
func (p *Patcher) Clear(h field.Handle) {
	p.do(func() error {
		if err := p.stream.PatchElementTempl(
			Slot(h.Name()),
			datastar.WithSelector("#"+FeedbackID(h.Name())),
			datastar.WithMode(datastar.ElementPatchModeOuter),
		); err != nil {
			return err
		}
		return p.patchState(h.Name(), StateNeutral)
	})
}

// ShowAlert prepends the summary alert to the element matching target.
func (p *Patcher) ShowAlert(target, id, text string) {
	p.do(func() error {
		return p.stream.PatchElementTempl(
			Alert(id, text),
			datastar.WithSelector(target),
			datastar.WithMode(datastar.ElementPatchModePrepend),
		)
	})
}

// RemoveAlert removes the summary alert with the given id.
func (p *Patcher) RemoveAlert(id string) {
	p.do(func() error {
		return p.stream.PatchElementTempl(
			Empty(),
			datastar.WithSelector("#"+id),
			datastar.WithMode(datastar.ElementPatchModeRemove),
		)
	})
}

// Signals patches arbitrary signals, e.g. a normalised field value.
func (p *Patcher) Signals(signals map[string]any) {
	p.do(func() error {
		data, err := json.Marshal(signals)
		if err != nil {
			return err
		}
		return p.stream.PatchSignals(data)
	})
}

// Err returns the first patch error, if any.
func (p *Patcher) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Patcher) patchState(name string, s State) error {
	data, err := json.Marshal(map[string]any{
		ValiditySignal: map[string]string{name: s.String()},
	})
	if err != nil {
		return err
	}
	return p.stream.PatchSignals(data)
}

func (p *Patcher) do(fn func() error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return
	}
	p.err = fn()
}
