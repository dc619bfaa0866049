package remindlib

import "time"

// Draft is a reminder being composed. Title is compared trimmed for
// emptiness at schedule time; TriggerAt starts at the session clock and
// is only ever replaced wholesale by picker selections, never partially
// mutated in place.
type Draft struct {
	Title     string
	TriggerAt time.Time
}

// NewDraft returns a draft whose trigger instant defaults to now.
func NewDraft(now time.Time) Draft {
	return Draft{TriggerAt: now}
}

// WithDate returns a copy of the draft with only the calendar date of
// the trigger instant replaced.
func (d Draft) WithDate(sel Date) Draft {
	d.TriggerAt = ApplyDateSelection(d.TriggerAt, sel)
	return d
}

// WithClock returns a copy of the draft with only the time of day of
// the trigger instant replaced.
func (d Draft) WithClock(sel Clock) Draft {
	d.TriggerAt = ApplyClockSelection(d.TriggerAt, sel)
	return d
}
