package common

import "time"

type UpdateType string

const (
	UPDATE_REMIND     UpdateType = "remind"
	UPDATE_PERMISSION UpdateType = "permission"
	UPDATE_VERSION    UpdateType = "version"
	UPDATE_STOP       UpdateType = "stop"
)

const (
	// DefaultTCPPort is the fallback TCP port used when the local
	// socket or named pipe transport is unavailable.
	DefaultTCPPort = 3859

	// TCPHost is the host the fallback TCP transport binds to.
	TCPHost = "localhost"

	// DefaultDialTimeout bounds a single dial attempt to the daemon.
	DefaultDialTimeout = 2 * time.Second

	// DefaultSocketName is the file name of the unix socket, created
	// under the user's temp directory unless overridden via env.
	DefaultSocketName = "remindl.sock"

	// MaxMessageSize caps a single framed message. Reminder payloads
	// are tiny; anything larger is a corrupt or hostile frame.
	MaxMessageSize = 1 << 20
)
