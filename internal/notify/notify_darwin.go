//go:build darwin

package notify

import (
	"strings"

	"github.com/remindl/remindl/pkg/logger"
)

// newPlatformService posts alerts through osascript. The system
// notification permission prompt appears the first time the script
// runs, which is exactly when the gate issues its one-time request.
func newPlatformService(appName string, log logger.Logger) (Service, error) {
	return newExecService(appName, "osascript", osascriptArgs, log), nil
}

func osascriptArgs(_, title, body string) []string {
	script := `display notification "` + escapeAppleScript(body) +
		`" with title "` + escapeAppleScript(title) + `"`
	return []string{"-e", script}
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
