// Package notify posts OS-level desktop alerts and resolves the host's
// notification authorization. On Linux it talks to the freedesktop
// notification server over the session D-Bus, falling back to the
// notify-send binary when no bus is available; on macOS it shells out
// to osascript; on Windows it raises a PowerShell toast.
//
// The daemon requests authorization once at startup, before the first
// reminder is accepted.
package notify
