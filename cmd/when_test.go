package cmd

import (
	"testing"
	"time"

	"github.com/remindl/remindl/pkg/remindlib"
)

func TestParseAt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "2026-09-01 09:30", false},
		{"empty", "", true},
		{"date only", "2026-09-01", true},
		{"wrong order", "09:30 2026-09-01", true},
		{"with seconds", "2026-09-01 09:30:15", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAt(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAt(%q) err = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Year() != 2026 || got.Month() != time.September || got.Hour() != 9 || got.Minute() != 30 {
				t.Errorf("parseAt(%q) = %s", tt.value, got)
			}
		})
	}
}

func TestParseIn(t *testing.T) {
	before := time.Now()
	got, err := parseIn("45m")
	if err != nil {
		t.Fatalf("parseIn(45m) err = %v", err)
	}
	lo := before.Add(45 * time.Minute)
	hi := time.Now().Add(45 * time.Minute)
	if got.Before(lo) || got.After(hi) {
		t.Errorf("parseIn(45m) = %s, want within [%s, %s]", got, lo, hi)
	}

	for _, bad := range []string{"", "abc", "2d"} {
		if _, err := parseIn(bad); err == nil {
			t.Errorf("parseIn(%q) expected error", bad)
		}
	}

	// Zero duration resolves to now, not an error
	if _, err := parseIn("0s"); err != nil {
		t.Errorf("parseIn(0s) err = %v", err)
	}
}

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("2026-09-01")
	if err != nil {
		t.Fatalf("parseDateFlag() err = %v", err)
	}
	want := remindlib.Date{Year: 2026, Month: time.September, Day: 1}
	if got != want {
		t.Errorf("parseDateFlag() = %+v, want %+v", got, want)
	}

	for _, bad := range []string{"", "01-09-2026", "2026/09/01", "tomorrow"} {
		if _, err := parseDateFlag(bad); err == nil {
			t.Errorf("parseDateFlag(%q) expected error", bad)
		}
	}
}

func TestParseTimeFlag(t *testing.T) {
	tests := []struct {
		value string
		want  remindlib.Clock
	}{
		{"09:30", remindlib.Clock{Hour: 9, Min: 30}},
		{"23:59:59", remindlib.Clock{Hour: 23, Min: 59, Sec: 59}},
		{"00:00", remindlib.Clock{}},
	}
	for _, tt := range tests {
		got, err := parseTimeFlag(tt.value)
		if err != nil {
			t.Errorf("parseTimeFlag(%q) err = %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTimeFlag(%q) = %+v, want %+v", tt.value, got, tt.want)
		}
	}

	for _, bad := range []string{"", "9.30", "25:00", "noon"} {
		if _, err := parseTimeFlag(bad); err == nil {
			t.Errorf("parseTimeFlag(%q) expected error", bad)
		}
	}
}

func TestValidateWhenExclusion(t *testing.T) {
	tests := []struct {
		name                string
		at, in, date, clock string
		wantErr             bool
	}{
		{"none set", "", "", "", "", false},
		{"only at", "2026-09-01 09:30", "", "", "", false},
		{"only in", "", "45m", "", "", false},
		{"date and time", "", "", "2026-09-01", "09:30", false},
		{"at and in", "2026-09-01 09:30", "45m", "", "", true},
		{"at and date", "2026-09-01 09:30", "", "2026-09-01", "", true},
		{"in and time", "", "45m", "", "09:30", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWhenExclusion(tt.at, tt.in, tt.date, tt.clock)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateWhenExclusion() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPastWarning(t *testing.T) {
	if w := pastWarning(time.Now().Add(-time.Minute)); w == "" {
		t.Error("expected warning for past instant")
	}
	if w := pastWarning(time.Now().Add(time.Hour)); w != "" {
		t.Errorf("unexpected warning for future instant: %q", w)
	}
}
