package common

import "time"

// RemindParams is the client request to schedule a one-shot reminder.
// TriggerAt is an absolute instant; past instants are accepted and fire
// immediately.
type RemindParams struct {
	Title     string    `json:"title"`
	TriggerAt time.Time `json:"trigger_at"`
}

// RemindResponse echoes what was scheduled, for display to the user.
type RemindResponse struct {
	ReminderId string    `json:"reminder_id"`
	Title      string    `json:"title"`
	TriggerAt  time.Time `json:"trigger_at"`
}

// PermissionResponse reports the daemon's cached notification
// authorization state: "unknown", "granted" or "denied".
type PermissionResponse struct {
	State string `json:"state"`
}

type VersionResponse struct {
	Version string `json:"version"`
}

type StopResponse struct {
	Stopped bool `json:"stopped"`
}
