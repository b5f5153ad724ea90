package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid transition: from, to, or event cannot be nil")
	ErrInvalidEvent      = errors.New("invalid event: event cannot be nil")
	ErrNilInitialState   = errors.New("initial state cannot be nil")
)

// ErrNoTransitionAvailable indicates no transition exists for the state/event pair.
type ErrNoTransitionAvailable struct {
	StateName string
	EventName string
}

func (e *ErrNoTransitionAvailable) Error() string {
	return fmt.Sprintf("no transition available from state '%s' for event '%s'", e.StateName, e.EventName)
}

// ErrTransitionRejected indicates every candidate transition was vetoed by a guard.
type ErrTransitionRejected struct {
	StateName string
	EventName string
}

func (e *ErrTransitionRejected) Error() string {
	return fmt.Sprintf("transition from state '%s' for event '%s' was rejected by guards", e.StateName, e.EventName)
}

func IsNoTransitionAvailableError(err error) bool {
	var e *ErrNoTransitionAvailable
	return errors.As(err, &e)
}

func IsTransitionRejectedError(err error) bool {
	var e *ErrTransitionRejected
	return errors.As(err, &e)
}
