// Package common provides shared types and constants used across the remindl
// client-daemon communication layer.
package common

// Environment variable names for configuration.
const (
	// SocketPathEnv is the environment variable for a custom socket path.
	SocketPathEnv = "REMINDL_SOCKET_PATH"

	// PipeNameEnv is the environment variable for a custom named pipe (Windows).
	PipeNameEnv = "REMINDL_PIPE_NAME"

	// TCPPortEnv is the environment variable for a custom TCP port.
	TCPPortEnv = "REMINDL_TCP_PORT"

	// ForceTCPEnv is the environment variable to force TCP connections.
	ForceTCPEnv = "REMINDL_FORCE_TCP"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "REMINDL_DEBUG"
)
