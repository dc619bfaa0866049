package remindlib

import (
	"testing"
	"time"
)

func TestApplyDateSelection_ReplacesDateOnly(t *testing.T) {
	base := time.Date(2024, time.June, 1, 17, 45, 12, 345, time.Local)
	got := ApplyDateSelection(base, Date{Year: 2025, Month: time.March, Day: 10})

	if y, m, d := got.Date(); y != 2025 || m != time.March || d != 10 {
		t.Errorf("date = %d-%02d-%02d; want 2025-03-10", y, m, d)
	}
	if h, mi, s := got.Clock(); h != 17 || mi != 45 || s != 12 {
		t.Errorf("clock = %02d:%02d:%02d; want 17:45:12", h, mi, s)
	}
	if got.Nanosecond() != 345 {
		t.Errorf("nanosecond = %d; want 345", got.Nanosecond())
	}
	if got.Location() != base.Location() {
		t.Errorf("location changed: %v", got.Location())
	}
}

func TestApplyClockSelection_ReplacesClockOnly(t *testing.T) {
	base := time.Date(2024, time.June, 1, 17, 45, 12, 345, time.Local)
	got := ApplyClockSelection(base, Clock{Hour: 9, Min: 30})

	if y, m, d := got.Date(); y != 2024 || m != time.June || d != 1 {
		t.Errorf("date = %d-%02d-%02d; want 2024-06-01", y, m, d)
	}
	if h, mi, s := got.Clock(); h != 9 || mi != 30 || s != 0 {
		t.Errorf("clock = %02d:%02d:%02d; want 09:30:00", h, mi, s)
	}
	if got.Nanosecond() != 345 {
		t.Errorf("nanosecond = %d; want 345", got.Nanosecond())
	}
}

func TestApplySelections_Commute(t *testing.T) {
	bases := []time.Time{
		time.Date(2024, time.June, 1, 17, 45, 12, 0, time.Local),
		time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Now(),
	}
	date := Date{Year: 2025, Month: time.March, Day: 10}
	clock := Clock{Hour: 9, Min: 30}

	for _, base := range bases {
		dateFirst := ApplyClockSelection(ApplyDateSelection(base, date), clock)
		clockFirst := ApplyDateSelection(ApplyClockSelection(base, clock), date)

		if !dateFirst.Equal(clockFirst) {
			t.Errorf("order matters for base %v: %v vs %v", base, dateFirst, clockFirst)
		}
		if DateOf(dateFirst) != date {
			t.Errorf("date fields = %+v; want %+v", DateOf(dateFirst), date)
		}
		if ClockOf(dateFirst) != clock {
			t.Errorf("clock fields = %+v; want %+v", ClockOf(dateFirst), clock)
		}
	}
}

func TestApplyDateSelection_PastInstantIsLegal(t *testing.T) {
	base := time.Now()
	got := ApplyDateSelection(base, Date{Year: 1990, Month: time.January, Day: 1})
	if !got.Before(base) {
		t.Fatalf("expected past instant, got %v", got)
	}
}

func TestDraft_PickerMerges(t *testing.T) {
	now := time.Date(2024, time.June, 1, 17, 45, 12, 0, time.Local)
	d := NewDraft(now)
	if !d.TriggerAt.Equal(now) {
		t.Fatalf("new draft trigger = %v; want %v", d.TriggerAt, now)
	}

	d = d.WithDate(Date{Year: 2025, Month: time.March, Day: 10})
	d = d.WithClock(Clock{Hour: 9, Min: 30})

	want := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.Local)
	if !d.TriggerAt.Equal(want) {
		t.Errorf("trigger = %v; want %v", d.TriggerAt, want)
	}
}
