package remindlib

import "testing"

func TestPickerPanel_Independent(t *testing.T) {
	p := NewPickerPanel(PickerConfig{})

	p.Open(PickerDate)
	if !p.IsOpen(PickerDate) {
		t.Error("date picker should be open")
	}
	if p.IsOpen(PickerClock) {
		t.Error("clock picker opened as side effect")
	}

	p.Open(PickerClock)
	p.Dismiss(PickerDate)
	if p.IsOpen(PickerDate) {
		t.Error("date picker should be dismissed")
	}
	if !p.IsOpen(PickerClock) {
		t.Error("clock picker dismissed as side effect")
	}
}

func TestPickerPanel_AutoCloseOnConfirm(t *testing.T) {
	p := NewPickerPanel(PickerConfig{AutoCloseOnConfirm: true})
	p.Open(PickerDate)
	p.Confirm(PickerDate)
	if p.IsOpen(PickerDate) {
		t.Error("picker should auto-close on confirm")
	}
}

func TestPickerPanel_ExplicitDismissPolicy(t *testing.T) {
	p := NewPickerPanel(PickerConfig{AutoCloseOnConfirm: false})
	p.Open(PickerClock)
	p.Confirm(PickerClock)
	if !p.IsOpen(PickerClock) {
		t.Error("picker should stay open until explicitly dismissed")
	}
	p.Dismiss(PickerClock)
	if p.IsOpen(PickerClock) {
		t.Error("picker should close on dismiss")
	}
}
