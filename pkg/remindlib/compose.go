package remindlib

import "time"

// Date is a calendar date selection produced by a date picker.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Clock is a time-of-day selection produced by a time picker.
type Clock struct {
	Hour int
	Min  int
	Sec  int
}

// DateOf extracts the calendar date fields of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ClockOf extracts the time-of-day fields of t.
func ClockOf(t time.Time) Clock {
	h, m, s := t.Clock()
	return Clock{Hour: h, Min: m, Sec: s}
}

// ApplyDateSelection returns current with only its year, month and day
// replaced by sel. Time of day, sub-second precision and location are
// preserved. The result may lie in the past; callers decide whether
// that matters.
func ApplyDateSelection(current time.Time, sel Date) time.Time {
	return time.Date(
		sel.Year, sel.Month, sel.Day,
		current.Hour(), current.Minute(), current.Second(),
		current.Nanosecond(), current.Location(),
	)
}

// ApplyClockSelection returns current with only its hour, minute and
// second replaced by sel. Calendar date, sub-second precision and
// location are preserved.
func ApplyClockSelection(current time.Time, sel Clock) time.Time {
	return time.Date(
		current.Year(), current.Month(), current.Day(),
		sel.Hour, sel.Min, sel.Sec,
		current.Nanosecond(), current.Location(),
	)
}
