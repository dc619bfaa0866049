package api

import (
	"encoding/json"
	"errors"

	"github.com/remindl/remindl/common"
	"github.com/remindl/remindl/internal/server"
)

func (s *Api) stopHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	if s.onStop == nil {
		return common.UPDATE_STOP, nil, errors.New("daemon does not support remote stop")
	}
	s.log.Info("stop requested over socket")
	// Defer the shutdown so the response reaches the client first.
	go s.onStop()
	return common.UPDATE_STOP, &common.StopResponse{Stopped: true}, nil
}
