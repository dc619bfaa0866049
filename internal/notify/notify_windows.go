//go:build windows

package notify

import (
	"strings"

	"github.com/remindl/remindl/pkg/logger"
)

// newPlatformService posts alerts through a PowerShell toast. Windows
// does not gate toast delivery behind a runtime prompt, so the
// authorization probe only checks that PowerShell is present.
func newPlatformService(appName string, log logger.Logger) (Service, error) {
	return newExecService(appName, "powershell", toastArgs, log), nil
}

func toastArgs(appName, title, body string) []string {
	script := `
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = @"
<toast><visual><binding template="ToastText02"><text id="1">` + escapeXML(title) + `</text><text id="2">` + escapeXML(body) + `</text></binding></visual></toast>
"@
$xml = New-Object Windows.Data.Xml.Dom.XmlDocument
$xml.LoadXml($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier("` + appName + `").Show($xml)
`
	return []string{"-NoProfile", "-NonInteractive", "-Command", script}
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
