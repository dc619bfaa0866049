// Package scheduler provides the trigger queue for pending reminders.
// It implements a single-goroutine scheduler using a min-heap of Events
// sorted by trigger time, with a 60-second max-sleep-cap to handle NTP
// steps, DST transitions, and system sleep (macOS monotonic clock pause).
//
// The scheduler is a daemon-level component that fires events and calls
// a registered OnTrigger callback to post the OS notification. It does
// not persist state; pending reminders are lost on daemon exit.
package scheduler
