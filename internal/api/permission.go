package api

import (
	"encoding/json"

	"github.com/remindl/remindl/common"
	"github.com/remindl/remindl/internal/server"
)

// permissionHandler reports the daemon's cached authorization state.
// It never re-prompts the host; the state was resolved once at daemon
// start.
func (s *Api) permissionHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	return common.UPDATE_PERMISSION, &common.PermissionResponse{
		State: s.gate.State().String(),
	}, nil
}
