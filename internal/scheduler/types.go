package scheduler

import "github.com/remindl/remindl/pkg/remindlib"

// Event is a pending one-shot reminder in the scheduler heap. It is an
// in-memory only type; nothing survives a daemon restart.
type Event struct {
	// ID uniquely identifies the reminder for daemon-internal removal.
	ID string
	// Request carries the notification content and the wall-clock
	// instant at which it should fire.
	Request remindlib.Request
}
