package cmd

import (
	"fmt"
	"time"

	"github.com/remindl/remindl/pkg/remindlib"
)

const (
	triggerAtLayout = "2006-01-02 15:04"
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	clockSecLayout  = "15:04:05"
)

// parseAt validates and parses an --at value.
// Returns the parsed time or an error with the expected format.
func parseAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("error: invalid --at format, expected YYYY-MM-DD HH:MM")
	}
	t, err := time.ParseInLocation(triggerAtLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("error: invalid --at format, expected YYYY-MM-DD HH:MM")
	}
	return t, nil
}

// parseIn validates an --in duration string and returns the resolved
// absolute time. Valid formats: Go duration syntax (e.g., "2h", "30m",
// "1h30m", "45s"). Zero durations resolve to now.
func parseIn(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("error: invalid --in duration, expected format like 2h, 30m, or 1h30m (days not supported, use 24h)")
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("error: invalid --in duration, expected format like 2h, 30m, or 1h30m (days not supported, use 24h)")
	}
	return time.Now().Add(d), nil
}

// parseDateFlag parses a --date value into a calendar date selection.
func parseDateFlag(value string) (remindlib.Date, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return remindlib.Date{}, fmt.Errorf("error: invalid --date format, expected YYYY-MM-DD")
	}
	return remindlib.DateOf(t), nil
}

// parseTimeFlag parses a --time value into a time-of-day selection.
// Both HH:MM and HH:MM:SS are accepted.
func parseTimeFlag(value string) (remindlib.Clock, error) {
	t, err := time.ParseInLocation(clockSecLayout, value, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(clockLayout, value, time.Local)
		if err != nil {
			return remindlib.Clock{}, fmt.Errorf("error: invalid --time format, expected HH:MM or HH:MM:SS")
		}
	}
	return remindlib.ClockOf(t), nil
}

// validateWhenExclusion rejects flag combinations that would set the
// trigger instant twice. --at and --in are mutually exclusive, and
// each of them excludes the component flags --date/--time.
func validateWhenExclusion(at, in, date, clock string) error {
	if at != "" && in != "" {
		return fmt.Errorf("error: flags --at and --in are mutually exclusive")
	}
	if (at != "" || in != "") && (date != "" || clock != "") {
		return fmt.Errorf("error: flags --date/--time cannot be combined with --at or --in")
	}
	return nil
}

// pastWarning returns a non-empty warning when t lies in the past.
// Past instants are legal; the reminder fires immediately.
func pastWarning(t time.Time) string {
	if t.Before(time.Now()) {
		return "warning: reminder time is in the past, it will fire immediately"
	}
	return ""
}
