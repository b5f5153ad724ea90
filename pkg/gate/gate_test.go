package gate_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
	"github.com/dmitrymomot/vetform/pkg/gate"
	"github.com/dmitrymomot/vetform/pkg/logger"
)

type fakeAlerts struct {
	mu      sync.Mutex
	shown   []gate.AlertID
	removed []gate.AlertID
	focused []string
	message string
}

func (a *fakeAlerts) Show(_ form.Form, id gate.AlertID, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shown = append(a.shown, id)
	a.message = message
}

func (a *fakeAlerts) Remove(id gate.AlertID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.removed = append(a.removed, id)
}

func (a *fakeAlerts) Focus(h field.Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.focused = append(a.focused, h.Name())
}

// live returns the alerts shown and not yet removed.
func (a *fakeAlerts) live() []gate.AlertID {
	a.mu.Lock()
	defer a.mu.Unlock()
	removed := make(map[gate.AlertID]bool, len(a.removed))
	for _, id := range a.removed {
		removed[id] = true
	}
	var out []gate.AlertID
	for _, id := range a.shown {
		if !removed[id] {
			out = append(out, id)
		}
	}
	return out
}

type manualTimer struct {
	d       time.Duration
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

func (c *manualClock) schedule(d time.Duration, fn func()) gate.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{d: d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// fire runs timer i even when it was stopped, like a timer that raced its Stop.
func (c *manualClock) fire(i int) {
	c.mu.Lock()
	t := c.timers[i]
	c.mu.Unlock()
	t.fn()
}

func newGate(t *testing.T, opts ...gate.Option) (*gate.Gate, *fakeAlerts, *manualClock, *feedback.Board) {
	t.Helper()
	alerts := &fakeAlerts{}
	clock := &manualClock{}
	board := feedback.NewBoard()
	v := form.NewValidator(field.NewChecker(), board)
	g := gate.New(v, alerts, append([]gate.Option{gate.WithScheduler(clock.schedule)}, opts...)...)
	return g, alerts, clock, board
}

func petForm(method, weight, age string) *form.Static {
	return form.New("mascota", method,
		field.NewInput("nombre_mascota", "text", "Firulais"),
		field.NewInput("peso", "number", weight),
		field.NewInput("edad", "number", age),
	)
}

func TestSubmitAllowsValidForm(t *testing.T) {
	t.Parallel()

	g, alerts, clock, board := newGate(t)

	assert.Equal(t, gate.Allow, g.Submit(context.Background(), petForm("POST", "12", "30")))
	assert.Equal(t, gate.Idle, g.State())
	assert.Empty(t, alerts.shown)
	assert.Empty(t, clock.timers)
	assert.Equal(t, feedback.StateValid, board.View("peso").State, "fields are still rendered")
}

func TestSubmitBlocksInvalidForm(t *testing.T) {
	t.Parallel()

	g, alerts, clock, board := newGate(t)

	assert.Equal(t, gate.Block, g.Submit(context.Background(), petForm("POST", "0", "3")))
	assert.Equal(t, gate.Blocked, g.State())

	require.Len(t, alerts.shown, 1)
	assert.Equal(t, gate.DefaultMessage, alerts.message)
	assert.Equal(t, []string{"peso"}, alerts.focused)
	assert.Equal(t, alerts.shown[0], g.Alert())
	assert.Equal(t, feedback.StateInvalid, board.View("peso").State)

	require.Len(t, clock.timers, 1)
	assert.Equal(t, gate.DefaultAlertTTL, clock.timers[0].d)
}

func TestSubmitNeverStacksAlerts(t *testing.T) {
	t.Parallel()

	g, alerts, clock, _ := newGate(t)
	f := petForm("POST", "0", "3")

	for range 3 {
		assert.Equal(t, gate.Block, g.Submit(context.Background(), f))
		assert.Len(t, alerts.live(), 1, "one summary alert per blocked attempt")
	}

	assert.Len(t, alerts.shown, 3)
	assert.Len(t, alerts.removed, 2)
	assert.True(t, clock.timers[0].stopped)
	assert.True(t, clock.timers[1].stopped)
	assert.False(t, clock.timers[2].stopped)
}

func TestSubmitPassThrough(t *testing.T) {
	t.Parallel()

	t.Run("non-post form", func(t *testing.T) {
		t.Parallel()
		g, alerts, _, board := newGate(t)
		assert.Equal(t, gate.Allow, g.Submit(context.Background(), petForm("GET", "0", "3")))
		assert.Empty(t, alerts.shown)
		assert.Empty(t, board.Fields(), "non-post forms are not validated")
	})

	t.Run("method is case-insensitive", func(t *testing.T) {
		t.Parallel()
		g, _, _, _ := newGate(t)
		assert.Equal(t, gate.Block, g.Submit(context.Background(), petForm("post", "0", "3")))
	})

	t.Run("no recognised fields", func(t *testing.T) {
		t.Parallel()
		g, alerts, _, board := newGate(t)
		f := form.New("buscar", "POST",
			field.NewInput("q", "search", "!!!"),
			field.NewInput("observaciones", "text", ""),
		)
		assert.Equal(t, gate.Allow, g.Submit(context.Background(), f))
		assert.Empty(t, alerts.shown)
		assert.Empty(t, board.Fields())
	})
}

func TestAlertExpires(t *testing.T) {
	t.Parallel()

	g, alerts, clock, _ := newGate(t)
	g.Submit(context.Background(), petForm("POST", "0", "3"))
	released := g.Released()

	clock.fire(0)

	assert.Equal(t, gate.Idle, g.State())
	assert.Empty(t, alerts.live())
	assert.Empty(t, g.Alert())
	select {
	case <-released:
	default:
		t.Fatal("released channel not closed")
	}

	clock.fire(0)
	assert.Len(t, alerts.removed, 1, "a second expiry is a no-op")
}

func TestLateTimerKeepsNewerAlert(t *testing.T) {
	t.Parallel()

	g, alerts, clock, _ := newGate(t)
	g.Submit(context.Background(), petForm("POST", "0", "3"))
	g.Submit(context.Background(), petForm("POST", "0", "3"))
	newer := g.Alert()

	clock.fire(0)

	assert.Equal(t, newer, g.Alert())
	assert.Equal(t, gate.Blocked, g.State())
	assert.Equal(t, []gate.AlertID{newer}, alerts.live())
}

func TestValidSubmitClearsStaleAlert(t *testing.T) {
	t.Parallel()

	g, alerts, clock, _ := newGate(t)
	g.Submit(context.Background(), petForm("POST", "0", "3"))

	assert.Equal(t, gate.Allow, g.Submit(context.Background(), petForm("POST", "5", "3")))
	assert.Equal(t, gate.Idle, g.State())
	assert.Empty(t, alerts.live())
	assert.True(t, clock.timers[0].stopped)
}

func TestDismiss(t *testing.T) {
	t.Parallel()

	g, alerts, clock, _ := newGate(t)
	ctx := context.Background()

	require.ErrorIs(t, g.Dismiss(ctx, "nope"), gate.ErrUnknownAlert)

	g.Submit(ctx, petForm("POST", "0", "3"))
	id := g.Alert()

	require.ErrorIs(t, g.Dismiss(ctx, "other"), gate.ErrUnknownAlert)
	require.NoError(t, g.Dismiss(ctx, id))
	assert.Equal(t, gate.Idle, g.State())
	assert.Equal(t, []gate.AlertID{id}, alerts.removed)
	assert.True(t, clock.timers[0].stopped)

	require.ErrorIs(t, g.Dismiss(ctx, id), gate.ErrUnknownAlert)
}

type closableAlerts struct {
	fakeAlerts
	dismiss func(gate.AlertID)
}

func (a *closableAlerts) OnClose(dismiss func(gate.AlertID)) {
	a.dismiss = dismiss
}

func TestClosableAlerts(t *testing.T) {
	t.Parallel()

	alerts := &closableAlerts{}
	clock := &manualClock{}
	g := gate.New(form.NewValidator(field.NewChecker(), nil), alerts, gate.WithScheduler(clock.schedule))
	require.NotNil(t, alerts.dismiss, "the gate hands its close function to the alerts")

	ctx := context.Background()
	require.Equal(t, gate.Block, g.Submit(ctx, petForm("POST", "0", "3")))
	id := g.Alert()

	alerts.dismiss(id)
	assert.Equal(t, gate.Idle, g.State())
	assert.Equal(t, []gate.AlertID{id}, alerts.removed)
	assert.True(t, clock.timers[0].stopped)

	select {
	case <-g.Released():
	default:
		t.Fatal("gate not released after the user closed the alert")
	}

	alerts.dismiss(id)
	assert.Len(t, alerts.removed, 1, "closing twice removes once")
}

func TestClose(t *testing.T) {
	t.Parallel()

	g, alerts, _, _ := newGate(t)
	require.NoError(t, g.Close(), "closing an idle gate is a no-op")

	g.Submit(context.Background(), petForm("POST", "0", "3"))
	require.NoError(t, g.Close())
	require.NoError(t, g.Close())

	assert.Equal(t, gate.Idle, g.State())
	assert.Len(t, alerts.removed, 1)
}

func TestReleasedWithoutAlert(t *testing.T) {
	t.Parallel()

	g, _, _, _ := newGate(t)
	select {
	case <-g.Released():
	default:
		t.Fatal("idle gate should report released")
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	g, alerts, clock, _ := newGate(t,
		gate.WithAlertTTL(2*time.Second),
		gate.WithMessage("Fix the errors."),
		gate.WithLogger(logger.New(logger.WithOutput(buf))),
	)
	g.Submit(context.Background(), petForm("POST", "0", "3"))

	assert.Equal(t, 2*time.Second, clock.timers[0].d)
	assert.Equal(t, "Fix the errors.", alerts.message)
	assert.Contains(t, buf.String(), "submission blocked")
	assert.Contains(t, buf.String(), `"field":"peso"`)
}

func TestHooks(t *testing.T) {
	t.Parallel()

	type call struct {
		decision   gate.Decision
		recognized int
		invalid    int
	}
	var calls []call
	g, _, _, _ := newGate(t, gate.WithHook(func(_ context.Context, _ form.Form, res form.Result, d gate.Decision) {
		calls = append(calls, call{d, res.Recognized, len(res.Invalid())})
	}))

	g.Submit(context.Background(), petForm("GET", "0", "3"))
	g.Submit(context.Background(), petForm("POST", "0", "3"))
	g.Submit(context.Background(), petForm("POST", "5", "3"))

	assert.Equal(t, []call{
		{gate.Allow, 0, 0},
		{gate.Block, 3, 1},
		{gate.Allow, 3, 0},
	}, calls)
}

func TestRealScheduler(t *testing.T) {
	t.Parallel()

	alerts := &fakeAlerts{}
	g := gate.New(nil, alerts, gate.WithAlertTTL(10*time.Millisecond))
	require.Equal(t, gate.Block, g.Submit(context.Background(), petForm("POST", "0", "3")))

	select {
	case <-g.Released():
	case <-time.After(time.Second):
		t.Fatal("alert was not removed")
	}
	assert.Equal(t, gate.Idle, g.State())
	assert.Empty(t, alerts.live())
}

func TestDecisionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "allow", gate.Allow.String())
	assert.Equal(t, "block", gate.Block.String())
}
