//go:build !windows

package server

import (
	"fmt"
	"net"
	"os"

	"github.com/remindl/remindl/common"
)

// createListener creates a Unix socket listener with TCP fallback.
// Transport priority: Unix socket > TCP
func (s *Server) createListener() (net.Listener, error) {
	if forceTCP() {
		s.log.Info("Force TCP mode enabled, using TCP listener")
		return net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, s.port))
	}

	path := socketPath()
	_ = os.Remove(path)
	l, err := net.ListenUnix("unix", &net.UnixAddr{
		Name: path,
		Net:  "unix",
	})
	if err != nil {
		s.log.Warning("unix socket unavailable (%v), trying tcp", err)
		tcpListener, tcpErr := net.Listen("tcp", fmt.Sprintf("%s:%d", common.TCPHost, s.port))
		if tcpErr != nil {
			return nil, fmt.Errorf("error listening: %s", tcpErr.Error())
		}
		return tcpListener, nil
	}
	setSocketPermissions(path)
	return l, nil
}

// cleanupSocket removes the Unix socket file. Returns an error if
// removal fails, unless the file doesn't exist.
func cleanupSocket() error {
	if err := os.Remove(socketPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
