// Package gate intercepts form submissions and blocks the invalid ones.
//
// A Gate is a two-state machine (idle, blocked) built on pkg/statemachine.
// Submit lets non-POST forms and forms without recognised fields through
// untouched. Otherwise it runs the form validator; when any field blocks,
// the gate:
//
//  1. removes the alert of a previous blocked attempt, if it is still shown,
//  2. shows exactly one summary alert at the top of the form,
//  3. focuses the first invalid field,
//  4. schedules the alert's removal after the alert TTL (5s by default).
//
// The alert also goes away when the user dismisses it (Dismiss) or leaves the
// page (Close). Removal only touches the alert that is still current, so a
// late timer of an earlier attempt never removes a newer alert.
//
//	g := gate.New(form.NewValidator(checker, renderer), alerts,
//		gate.WithLogger(log),
//	)
//	if g.Submit(ctx, f) == gate.Block {
//		return // the native submission is cancelled
//	}
//
// Timers come from a Scheduler, time.AfterFunc by default. A Scheduler must
// not run its callback synchronously.
package gate
