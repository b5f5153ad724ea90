// Package watch wires live validation to a stream of field events.
//
// Register subscribes to a Source and reacts to each Event according to its
// trigger:
//
//   - input: live formatting is applied in place (phone characters are
//     filtered, product codes upper-cased) and stale feedback is cleared;
//   - blur: the field is validated and the outcome rendered, except for
//     appointment date-times;
//   - change: appointment date-times are validated and rendered.
//
// Unclassified fields are ignored. Events are handled one at a time, to
// completion, in the order the source delivers them.
//
//	bus := watch.NewBus()
//	sub := watch.Register(bus, board, watch.WithChecker(checker))
//	defer sub.Close()
//
//	bus.Emit(watch.Event{Field: peso, Trigger: watch.TriggerBlur})
//
// Closing a Subscription detaches it from the source; events that arrive
// afterwards are dropped.
package watch
