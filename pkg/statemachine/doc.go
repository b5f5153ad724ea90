// Package statemachine is a small finite-state machine used to model
// interaction flows such as the submission gate (idle, blocked).
//
// States and events are interfaces with a Name method; StringState and
// StringEvent cover the common case.
//
//	const (
//		Idle    = statemachine.StringState("idle")
//		Blocked = statemachine.StringState("blocked")
//		Block   = statemachine.StringEvent("block")
//		Dismiss = statemachine.StringEvent("dismiss")
//	)
//
//	m := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Blocked, Block),
//		statemachine.WithTransition(Blocked, Blocked, Block),
//		statemachine.WithTransition(Blocked, Idle, Dismiss),
//	)
//	_ = m.Fire(ctx, Block, nil)
//
// Several transitions may share a source state and event; the first one whose
// guards all pass is taken. Actions run in order before the state changes and
// an action error aborts the transition. Observers registered with
// WithObserver run after the state changed, outside the machine lock.
//
// A Machine is safe for concurrent use.
package statemachine
