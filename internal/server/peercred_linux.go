//go:build linux

package server

import (
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// peerAllowed verifies that a unix-socket peer belongs to the same
// user (or root) as the daemon. Non-unix transports are not checked
// here; TCP is already bound to localhost.
func peerAllowed(conn net.Conn) bool {
	uc, ok := conn.(*net.UnixConn)
	if !ok {
		return true
	}
	raw, err := uc.SyscallConn()
	if err != nil {
		return false
	}
	var cred *unix.Ucred
	var credErr error
	if err := raw.Control(func(fd uintptr) {
		cred, credErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	}); err != nil {
		return false
	}
	if credErr != nil || cred == nil {
		return false
	}
	return int(cred.Uid) == os.Getuid() || cred.Uid == 0
}
