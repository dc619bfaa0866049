package api

import (
	"context"
	"sync"
	"time"

	"github.com/remindl/remindl/common"
	"github.com/remindl/remindl/internal/server"
	"github.com/remindl/remindl/pkg/logger"
	"github.com/remindl/remindl/pkg/remindlib"
)

// Api exposes the daemon's reminder operations over the socket
// protocol and implements server.Core for the JSON-RPC bridge.
type Api struct {
	log      logger.Logger
	gate     *remindlib.PermissionGate
	sched    *remindlib.Scheduler
	delivery *QueueDelivery
	version  string
	onStop   func()

	// mu serializes scheduling attempts so the ID assigned by the
	// delivery adapter can be read back for the response.
	mu sync.Mutex
}

// NewApi wires the scheduling core to its queue-backed delivery. The
// onStop callback requests a daemon shutdown; it may be nil, in which
// case the stop method reports an error.
func NewApi(l logger.Logger, gate *remindlib.PermissionGate, delivery *QueueDelivery, version string, onStop func()) (*Api, error) {
	return &Api{
		log:      l,
		gate:     gate,
		sched:    remindlib.NewScheduler(gate, delivery, l),
		delivery: delivery,
		version:  version,
		onStop:   onStop,
	}, nil
}

// RegisterHandlers installs the reminder API methods on the server.
func (s *Api) RegisterHandlers(server *server.Server) {
	server.RegisterHandler(common.UPDATE_REMIND, s.remindHandler)
	server.RegisterHandler(common.UPDATE_PERMISSION, s.permissionHandler)
	server.RegisterHandler(common.UPDATE_VERSION, s.versionHandler)
	server.RegisterHandler(common.UPDATE_STOP, s.stopHandler)
}

// ScheduleReminder runs one scheduling attempt and returns the
// confirmation alongside the queued reminder's ID.
func (s *Api) ScheduleReminder(ctx context.Context, title string, triggerAt time.Time) (*remindlib.Confirmation, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conf, err := s.sched.Schedule(ctx, remindlib.Draft{
		Title:     title,
		TriggerAt: triggerAt,
	})
	if err != nil {
		return nil, "", err
	}
	return conf, s.delivery.LastID(), nil
}

// PermissionState returns the cached authorization state.
func (s *Api) PermissionState() remindlib.PermissionState {
	return s.gate.State()
}

var _ server.Core = (*Api)(nil)
