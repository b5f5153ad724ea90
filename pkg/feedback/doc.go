// Package feedback paints validation outcomes next to form fields.
//
// A Renderer keeps at most one message per field: Render retracts whatever
// was shown for the field before painting the new outcome, and Clear removes
// the message together with both validity states. Two renderers ship with the
// package:
//
//   - Board is headless. It records the current View of every field and is
//     used by tests, the CLI and the browser binding.
//   - Patcher streams the same protocol to the page as datastar SSE patches.
//     The message element is morphed at #<field>-feedback and the field state
//     travels as the "validity" signal.
//
// The visual contract is class based. Messages carry "validation-message"
// plus the severity class (error, success or warning) and an icon; inputs get
// "is-invalid" or "is-valid". Warnings mark the field as neither.
//
// Message text comes from a Localize function. The default returns the
// outcome's own message; Localized renders it through an i18n.Translator.
package feedback
