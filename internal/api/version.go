package api

import (
	"encoding/json"

	"github.com/remindl/remindl/common"
	"github.com/remindl/remindl/internal/server"
)

// versionHandler returns the daemon's version so clients can detect a
// mismatch with their own build.
func (s *Api) versionHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	return common.UPDATE_VERSION, &common.VersionResponse{
		Version: s.version,
	}, nil
}
