package remindlib

import (
	"context"
	"time"
)

// Request is the immutable value handed to the delivery backend. Body
// mirrors Title; the minimal content model carries no separate body
// text.
type Request struct {
	Title     string
	Body      string
	TriggerAt time.Time
}

// NewRequest builds a schedule request from a validated title and a
// trigger instant.
func NewRequest(title string, triggerAt time.Time) Request {
	return Request{Title: title, Body: title, TriggerAt: triggerAt}
}

// Delivery accepts one-shot schedule requests. An implementation fires
// an OS-level alert at or after Request.TriggerAt, at most once per
// request, best effort. A nil error means "request accepted", not
// "alert delivered".
type Delivery interface {
	ScheduleOneShot(ctx context.Context, req Request) error
}

// Authorizer is the host notification permission service. It is
// invoked at most once per process, by PermissionGate.
type Authorizer interface {
	RequestAuthorization(ctx context.Context) (granted bool, err error)
}

// Confirmation summarizes a successfully scheduled reminder for
// display to the user.
type Confirmation struct {
	Title     string
	TriggerAt time.Time
}
