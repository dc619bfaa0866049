//go:build windows

package remindcli

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Microsoft/go-winio"

	"github.com/remindl/remindl/common"
)

// dialPipeFunc points to the named pipe dialer; tests swap it to mock
// pipe connections.
var dialPipeFunc = dialPipeImpl

// dialPipeImpl dials the Windows named pipe. If timeout is nil, the
// default from common.DefaultDialTimeout is used.
func dialPipeImpl(path string, timeout *time.Duration) (net.Conn, error) {
	if timeout == nil {
		defaultTimeout := common.DefaultDialTimeout
		timeout = &defaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	return winio.DialPipeContext(ctx, path)
}

// dial establishes a connection to the daemon using a Windows named
// pipe with TCP fallback. Transport priority: named pipe > TCP.
// Setting REMINDL_FORCE_TCP=1 skips the pipe entirely.
func dial() (net.Conn, error) {
	if forceTCP() {
		debugLog("TCP transport forced, connecting to %s", tcpAddress())
		return dialFunc("tcp", tcpAddress())
	}
	pipePath := common.PipePath()
	debugLog("Attempting connection via named pipe at %s", pipePath)
	timeout := common.DefaultDialTimeout
	conn, pipeErr := dialPipeFunc(pipePath, &timeout)
	if pipeErr != nil {
		debugLog("Named pipe connection failed: %v, falling back to TCP", pipeErr)
		conn, err := dialFunc("tcp", tcpAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to connect: named pipe error: %v; tcp error: %w", pipeErr, err)
		}
		debugLog("Successfully connected via TCP fallback to %s", tcpAddress())
		return conn, nil
	}
	debugLog("Successfully connected via named pipe")
	return conn, nil
}
