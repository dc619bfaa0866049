package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/remindl/remindl/common"
	"github.com/remindl/remindl/internal/server"
)

func (s *Api) remindHandler(sconn *server.SyncConn, body json.RawMessage) (common.UpdateType, any, error) {
	var m common.RemindParams
	if err := json.Unmarshal(body, &m); err != nil {
		return common.UPDATE_REMIND, nil, err
	}
	if m.TriggerAt.IsZero() {
		return common.UPDATE_REMIND, nil, errors.New("trigger_at is required")
	}

	conf, id, err := s.ScheduleReminder(context.Background(), m.Title, m.TriggerAt)
	if err != nil {
		s.log.Warning("failed to schedule reminder: %v", err)
		return common.UPDATE_REMIND, nil, err
	}
	s.log.Info("scheduled reminder %s (%q) for %s", id, conf.Title, conf.TriggerAt)

	return common.UPDATE_REMIND, &common.RemindResponse{
		ReminderId: id,
		Title:      conf.Title,
		TriggerAt:  conf.TriggerAt,
	}, nil
}
