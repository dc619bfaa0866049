//go:build linux

package notify

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/remindl/remindl/pkg/logger"
)

const (
	dbusDest = "org.freedesktop.Notifications"
	dbusPath = dbus.ObjectPath("/org/freedesktop/Notifications")
)

// dbusService posts alerts through the freedesktop notification server
// on the session bus.
type dbusService struct {
	conn    *dbus.Conn
	appName string
	log     logger.Logger
}

// newPlatformService connects to the session bus, falling back to the
// notify-send binary when no bus is reachable (headless hosts, SSH
// sessions without DBUS_SESSION_BUS_ADDRESS).
func newPlatformService(appName string, log logger.Logger) (Service, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		log.Warning("session bus unavailable, using notify-send: %v", err)
		return newExecService(appName, "notify-send", notifySendArgs, log), nil
	}
	return &dbusService{conn: conn, appName: appName, log: log}, nil
}

func notifySendArgs(appName, title, body string) []string {
	return []string{"--app-name=" + appName, title, body}
}

// Post raises a transient desktop notification. The notification id 0
// asks the server to allocate a new one; expiry -1 leaves the timeout
// to the server.
func (s *dbusService) Post(ctx context.Context, title, body string) error {
	obj := s.conn.Object(dbusDest, dbusPath)
	call := obj.CallWithContext(ctx, dbusDest+".Notify", 0,
		s.appName,             // app_name
		uint32(0),             // replaces_id
		"",                    // app_icon
		title,                 // summary
		body,                  // body
		[]string{},            // actions
		map[string]dbus.Variant{}, // hints
		int32(-1),             // expire_timeout
	)
	return call.Err
}

// RequestAuthorization probes the notification server. A reachable
// server means the process may deliver notifications; there is no
// separate permission prompt on freedesktop hosts.
func (s *dbusService) RequestAuthorization(ctx context.Context) (bool, error) {
	var name, vendor, version, specVersion string
	obj := s.conn.Object(dbusDest, dbusPath)
	err := obj.CallWithContext(ctx, dbusDest+".GetServerInformation", 0).
		Store(&name, &vendor, &version, &specVersion)
	if err != nil {
		return false, err
	}
	s.log.Info("notification server: %s (%s %s)", name, vendor, version)
	return true, nil
}
