//go:build !windows

package remindcli

import (
	"os"
	"path/filepath"

	"github.com/remindl/remindl/common"
)

func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), common.DefaultSocketName)
}
