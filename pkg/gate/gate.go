package gate

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
	"github.com/dmitrymomot/vetform/pkg/logger"
	"github.com/dmitrymomot/vetform/pkg/statemachine"
)

const (
	// DefaultAlertTTL is how long a summary alert stays on the page.
	DefaultAlertTTL = 5 * time.Second

	// MessageKey is the translation key of the summary alert.
	MessageKey = "validation.form_has_errors"

	// DefaultMessage is the summary alert in the bundled language.
	DefaultMessage = "Por favor, corrija los errores antes de continuar."
)

// Gate states and events.
const (
	Idle    = statemachine.StringState("idle")
	Blocked = statemachine.StringState("blocked")

	blockEvent   = statemachine.StringEvent("block")
	dismissEvent = statemachine.StringEvent("dismiss")
)

// Decision is the outcome of a submission attempt.
type Decision int

const (
	Allow Decision = iota
	Block
)

func (d Decision) String() string {
	if d == Block {
		return "block"
	}
	return "allow"
}

// AlertID identifies one summary alert.
type AlertID string

// Alerts paints the summary alert and moves focus.
type Alerts interface {
	Show(f form.Form, id AlertID, message string)
	Remove(id AlertID)
	Focus(h field.Handle)
}

// Closable is implemented by Alerts that let the user close an alert.
// New hands it the function to call when that happens.
type Closable interface {
	OnClose(dismiss func(id AlertID))
}

// Hook observes every decision with the validation result behind it.
// Pass-through submissions report an empty Result.
type Hook func(ctx context.Context, f form.Form, res form.Result, d Decision)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler func(d time.Duration, fn func()) Timer

// AfterFunc is the default Scheduler.
func AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Gate decides whether form submissions proceed.
type Gate struct {
	validator *form.Validator
	alerts    Alerts
	ttl       time.Duration
	schedule  Scheduler
	message   string
	logger    *slog.Logger
	hooks     []Hook

	mu       sync.Mutex
	machine  *statemachine.Machine
	current  AlertID
	timer    Timer
	released chan struct{}
}

// New creates a Gate in the Idle state. A nil validator checks fields
// without rendering feedback.
func New(v *form.Validator, alerts Alerts, opts ...Option) *Gate {
	if v == nil {
		v = form.NewValidator(nil, nil)
	}
	g := &Gate{
		validator: v,
		alerts:    alerts,
		ttl:       DefaultAlertTTL,
		schedule:  AfterFunc,
		message:   DefaultMessage,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.machine = statemachine.MustNew(Idle,
		statemachine.WithTransition(Idle, Blocked, blockEvent,
			statemachine.WithAction(g.showAlert),
		),
		statemachine.WithTransition(Blocked, Idle, dismissEvent,
			statemachine.WithAction(g.removeAlert),
		),
	)
	if c, ok := alerts.(Closable); ok {
		c.OnClose(g.closedByUser)
	}
	return g
}

type blockData struct {
	form  form.Form
	id    AlertID
	first field.Handle
}

// Submit validates f and returns whether its submission may proceed.
func (g *Gate) Submit(ctx context.Context, f form.Form) Decision {
	if !form.IsPost(f) || g.validator.Recognized(f) == 0 {
		g.notify(ctx, f, form.Result{}, Allow)
		return Allow
	}

	res := g.validator.Validate(ctx, f)
	d := g.decide(ctx, f, res)
	g.notify(ctx, f, res, d)
	return d
}

func (g *Gate) decide(ctx context.Context, f form.Form, res form.Result) Decision {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.releaseLocked(ctx)

	if res.Valid() {
		return Allow
	}

	first, _ := res.FirstInvalid()
	id := AlertID(uuid.NewString())
	if err := g.machine.Fire(ctx, blockEvent, blockData{form: f, id: id, first: first}); err != nil {
		g.logger.ErrorContext(ctx, "failed to block submission", logger.Error(err))
		return Block
	}

	g.current = id
	g.released = make(chan struct{})
	g.timer = g.schedule(g.ttl, func() { g.expire(id) })

	attrs := []any{
		logger.Component("gate"),
		logger.AlertID(string(id)),
		slog.Int("invalid", len(res.Invalid())),
	}
	if first != nil {
		attrs = append(attrs, logger.Field(first.Name()))
	}
	if res.Err != nil {
		attrs = append(attrs, logger.Error(res.Err))
	}
	g.logger.InfoContext(ctx, "submission blocked", attrs...)

	return Block
}

func (g *Gate) notify(ctx context.Context, f form.Form, res form.Result, d Decision) {
	for _, h := range g.hooks {
		h(ctx, f, res, d)
	}
}

// Dismiss removes the alert id when it is still current.
func (g *Gate) Dismiss(ctx context.Context, id AlertID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id == "" || g.current != id {
		return ErrUnknownAlert
	}
	g.releaseLocked(ctx)
	return nil
}

func (g *Gate) closedByUser(id AlertID) {
	ctx := context.Background()
	if err := g.Dismiss(ctx, id); err != nil {
		g.logger.DebugContext(ctx, "closed alert is no longer live", logger.AlertID(string(id)), logger.Error(err))
	}
}

// Close removes the live alert, if any, and cancels its timer.
// It is called when the page goes away and is safe to call repeatedly.
func (g *Gate) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.releaseLocked(context.Background())
	return nil
}

// State returns the current gate state.
func (g *Gate) State() statemachine.State {
	return g.machine.Current()
}

// Alert returns the live alert id, or "" when none is shown.
func (g *Gate) Alert() AlertID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// Released returns a channel that is closed once no alert is live.
func (g *Gate) Released() <-chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == "" {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return g.released
}

func (g *Gate) expire(id AlertID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current != id {
		return
	}
	g.releaseLocked(context.Background())
}

// releaseLocked removes the current alert and returns to Idle.
func (g *Gate) releaseLocked(ctx context.Context) {
	if g.current == "" {
		return
	}
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	if err := g.machine.Fire(ctx, dismissEvent, g.current); err != nil {
		g.logger.ErrorContext(ctx, "failed to dismiss alert", logger.AlertID(string(g.current)), logger.Error(err))
	}
	g.current = ""
	close(g.released)
	g.released = nil
}

func (g *Gate) showAlert(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	d := data.(blockData)
	if g.alerts == nil {
		return nil
	}
	g.alerts.Show(d.form, d.id, g.message)
	if d.first != nil {
		g.alerts.Focus(d.first)
	}
	return nil
}

func (g *Gate) removeAlert(_ context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
	if g.alerts != nil {
		g.alerts.Remove(data.(AlertID))
	}
	return nil
}
