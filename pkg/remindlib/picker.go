package remindlib

// PickerKind identifies one of the two independent pickers.
type PickerKind int

const (
	PickerDate PickerKind = iota
	PickerClock
)

// PickerConfig carries per-deployment picker policy. Some front ends
// close a picker automatically when a value is confirmed, others keep
// it open until explicitly dismissed.
type PickerConfig struct {
	AutoCloseOnConfirm bool
}

// PickerPanel tracks whether each picker should currently be shown.
// The two pickers are independent: opening or confirming one never
// affects the other.
type PickerPanel struct {
	cfg       PickerConfig
	dateOpen  bool
	clockOpen bool
}

// NewPickerPanel returns a panel with both pickers closed.
func NewPickerPanel(cfg PickerConfig) *PickerPanel {
	return &PickerPanel{cfg: cfg}
}

// Open marks the given picker as visible.
func (p *PickerPanel) Open(k PickerKind) {
	p.set(k, true)
}

// Dismiss marks the given picker as hidden.
func (p *PickerPanel) Dismiss(k PickerKind) {
	p.set(k, false)
}

// Confirm records a value confirmation on the given picker, closing it
// when the panel is configured to auto-close on confirm.
func (p *PickerPanel) Confirm(k PickerKind) {
	if p.cfg.AutoCloseOnConfirm {
		p.set(k, false)
	}
}

// IsOpen reports whether the given picker should be shown.
func (p *PickerPanel) IsOpen(k PickerKind) bool {
	if k == PickerDate {
		return p.dateOpen
	}
	return p.clockOpen
}

func (p *PickerPanel) set(k PickerKind, open bool) {
	if k == PickerDate {
		p.dateOpen = open
		return
	}
	p.clockOpen = open
}
