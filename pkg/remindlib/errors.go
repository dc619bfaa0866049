package remindlib

import "errors"

var (
	ErrEmptyTitle    = errors.New("reminder title is empty")
	ErrNotAuthorized = errors.New("notifications are not authorized")
)

// DeliveryError wraps a failure reported by the delivery backend. The
// cause is surfaced verbatim to the user; no automatic retry is made.
type DeliveryError struct {
	Cause error
}

func (e *DeliveryError) Error() string {
	return "delivery failed: " + e.Cause.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}
