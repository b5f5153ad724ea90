package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// State represents a state in the state machine.
type State interface {
	Name() string
}

// Event represents an event that can trigger a state transition.
type Event interface {
	Name() string
}

// StringState is a string-backed State.
type StringState string

func (s StringState) Name() string { return string(s) }

// StringEvent is a string-backed Event.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }

// Guard vetoes a transition when it returns false.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs before the state changes. Returning an error prevents the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Observer is notified after a transition completed.
type Observer func(ctx context.Context, from, to State, event Event)

type transition struct {
	to      State
	guards  []Guard
	actions []Action
}

// Machine is an in-memory state machine keyed by [from][event].
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[string]map[string][]transition
	observers   []Observer
}

// Option configures a Machine during construction.
type Option func(*Machine) error

// TransitionOption configures a single transition.
type TransitionOption func(*transition)

// New creates a Machine in initialState.
func New(initialState State, opts ...Option) (*Machine, error) {
	if initialState == nil {
		return nil, ErrNilInitialState
	}

	m := &Machine{
		initial:     initialState,
		current:     initialState,
		transitions: make(map[string]map[string][]transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(initialState State, opts ...Option) *Machine {
	m, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition adds a transition from -> to on event.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		if from == nil || to == nil || event == nil {
			return ErrInvalidTransition
		}
		t := transition{to: to}
		for _, opt := range opts {
			opt(&t)
		}
		byEvent, ok := m.transitions[from.Name()]
		if !ok {
			byEvent = make(map[string][]transition)
			m.transitions[from.Name()] = byEvent
		}
		byEvent[event.Name()] = append(byEvent[event.Name()], t)
		return nil
	}
}

// WithObserver registers fn to run after every completed transition.
func WithObserver(fn Observer) Option {
	return func(m *Machine) error {
		if fn != nil {
			m.observers = append(m.observers, fn)
		}
		return nil
	}
}

// WithGuard adds a guard to a transition.
func WithGuard(guard Guard) TransitionOption {
	return func(t *transition) {
		if guard != nil {
			t.guards = append(t.guards, guard)
		}
	}
}

// WithAction adds an action to a transition.
func WithAction(action Action) TransitionOption {
	return func(t *transition) {
		if action != nil {
			t.actions = append(t.actions, action)
		}
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine) Is(s State) bool {
	return s != nil && m.Current().Name() == s.Name()
}

// Fire applies event. The first transition whose guards pass is taken.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	t, err := m.match(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return err
	}

	for _, action := range t.actions {
		if err := action(ctx, from, t.to, event, data); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}
	m.current = t.to
	observers := m.observers
	m.mu.Unlock()

	for _, fn := range observers {
		fn(ctx, from, t.to, event)
	}
	return nil
}

// CanFire reports whether event would be accepted in the current state.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.match(ctx, event, data)
	return err == nil
}

// Reset returns the machine to its initial state without running actions.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

func (m *Machine) match(ctx context.Context, event Event, data any) (transition, error) {
	candidates := m.transitions[m.current.Name()][event.Name()]
	if len(candidates) == 0 {
		return transition{}, &ErrNoTransitionAvailable{StateName: m.current.Name(), EventName: event.Name()}
	}

next:
	for _, t := range candidates {
		for _, guard := range t.guards {
			if !guard(ctx, m.current, event, data) {
				continue next
			}
		}
		return t, nil
	}
	return transition{}, &ErrTransitionRejected{StateName: m.current.Name(), EventName: event.Name()}
}
