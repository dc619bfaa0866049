// Package remindlib implements the reminder core: composing a trigger
// instant from independently selected date and clock values, validating
// the reminder title, gating on the host's notification authorization,
// and submitting a one-shot schedule request to a delivery backend.
//
// The package holds no persistent state. A Draft lives for one session,
// the PermissionGate resolves the host authorization at most once per
// process, and the Scheduler is stateless between attempts.
package remindlib
