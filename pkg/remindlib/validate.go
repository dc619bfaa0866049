package remindlib

import "strings"

// ValidateTitle checks the reminder title and returns it trimmed of
// surrounding whitespace. Titles that are empty after trimming fail
// with ErrEmptyTitle. Pure; no I/O.
func ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	return trimmed, nil
}
