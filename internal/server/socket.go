package server

import (
	"os"
	"path/filepath"

	"github.com/remindl/remindl/common"
)

// socketPathOverride is set from daemon configuration; the env var
// still wins so client and daemon agree on the path.
var socketPathOverride string

// SetSocketPath installs a configured socket path override.
func SetSocketPath(path string) {
	socketPathOverride = path
}

func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	if socketPathOverride != "" {
		return socketPathOverride
	}
	return filepath.Join(os.TempDir(), common.DefaultSocketName)
}

// forceTCP reports whether the TCP transport was forced via env.
func forceTCP() bool {
	return os.Getenv(common.ForceTCPEnv) == "1"
}
