package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/remindl/remindl/internal/config"
	"github.com/remindl/remindl/pkg/remindlib"
)

// pickWhen runs the interactive date and time pickers on stdin.
func pickWhen(draft remindlib.Draft, w io.Writer) (remindlib.Draft, error) {
	return pickWhenFrom(draft, os.Stdin, w, pickerConfig())
}

// pickerConfig resolves the picker policy from the daemon config; a
// broken config falls back to auto-close.
func pickerConfig() remindlib.PickerConfig {
	cfg, err := config.Load("")
	if err != nil {
		return remindlib.PickerConfig{AutoCloseOnConfirm: true}
	}
	return remindlib.PickerConfig{AutoCloseOnConfirm: cfg.Picker.AutoCloseOnConfirm}
}

// pickWhenFrom drives the two pickers over a line-based prompt. Each
// picker is independent: an empty line dismisses it and keeps the
// current component.
func pickWhenFrom(draft remindlib.Draft, r io.Reader, w io.Writer, cfg remindlib.PickerConfig) (remindlib.Draft, error) {
	panel := remindlib.NewPickerPanel(cfg)
	scanner := bufio.NewScanner(r)

	panel.Open(remindlib.PickerDate)
	for panel.IsOpen(remindlib.PickerDate) {
		fmt.Fprintf(w, "Date [%s] (YYYY-MM-DD, empty keeps current): ", draft.TriggerAt.Format(dateLayout))
		if !scanner.Scan() {
			panel.Dismiss(remindlib.PickerDate)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			panel.Dismiss(remindlib.PickerDate)
			break
		}
		sel, err := parseDateFlag(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		draft = draft.WithDate(sel)
		panel.Confirm(remindlib.PickerDate)
	}

	panel.Open(remindlib.PickerClock)
	for panel.IsOpen(remindlib.PickerClock) {
		fmt.Fprintf(w, "Time [%s] (HH:MM, empty keeps current): ", draft.TriggerAt.Format(clockLayout))
		if !scanner.Scan() {
			panel.Dismiss(remindlib.PickerClock)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			panel.Dismiss(remindlib.PickerClock)
			break
		}
		sel, err := parseTimeFlag(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		draft = draft.WithClock(sel)
		panel.Confirm(remindlib.PickerClock)
	}

	if err := scanner.Err(); err != nil {
		return draft, fmt.Errorf("error: failed to read input: %w", err)
	}
	return draft, nil
}
