package cmd

import (
	"context"
	"time"

	"github.com/remindl/remindl/internal/api"
	"github.com/remindl/remindl/internal/config"
	"github.com/remindl/remindl/internal/notify"
	"github.com/remindl/remindl/internal/scheduler"
	"github.com/remindl/remindl/internal/server"
	"github.com/remindl/remindl/pkg/logger"
	"github.com/remindl/remindl/pkg/remindlib"
)

// authorizeTimeout bounds the one-time host permission request issued
// at daemon start.
const authorizeTimeout = 30 * time.Second

// DaemonComponents holds all initialized daemon components, allowing
// unified initialization and cleanup across console mode and Windows
// service mode.
type DaemonComponents struct {
	Notifier notify.Service
	Gate     *remindlib.PermissionGate
	Queue    *scheduler.Scheduler
	Api      *api.Api
	Server   *server.Server

	cancelQueue context.CancelFunc
	log         logger.Logger
}

// Close releases daemon component resources in reverse order of
// initialization.
func (c *DaemonComponents) Close() {
	if c.log != nil {
		c.log.Info("Shutting down daemon...")
	}

	if c.Server != nil {
		_ = c.Server.Shutdown()
	}

	// Stop the queue goroutine; pending reminders are discarded.
	if c.cancelQueue != nil {
		c.cancelQueue()
	}

	if c.log != nil {
		c.log.Info("Daemon stopped")
	}
}

// initDaemonComponents initializes all daemon components with the
// provided configuration and logger. This is the shared initialization
// used by both console mode and Windows service mode.
var initDaemonComponents = func(cfg *config.Config, log logger.Logger) (*DaemonComponents, error) {
	notifier, err := notify.New(cfg.Notify.AppName, log)
	if err != nil {
		log.Error("Notification service initialization failed: %v", err)
		return nil, err
	}

	// Resolve the permission state once, before serving. Denied does
	// not abort startup: the daemon keeps answering status queries
	// and rejects schedule requests.
	gate := remindlib.NewPermissionGate(notifier, log)
	authCtx, cancelAuth := context.WithTimeout(context.Background(), authorizeTimeout)
	state := gate.EnsureAuthorized(authCtx)
	cancelAuth()
	log.Info("Notification permission: %s", state)

	queueCtx, cancelQueue := context.WithCancel(context.Background())
	queue := scheduler.New(queueCtx, api.TriggerSink(notifier, log))

	components := &DaemonComponents{
		Notifier:    notifier,
		Gate:        gate,
		Queue:       queue,
		cancelQueue: cancelQueue,
		log:         log,
	}

	a, err := api.NewApi(log, gate, api.NewQueueDelivery(queue),
		currentBuildArgs.Version, func() { components.Close() })
	if err != nil {
		log.Error("API initialization failed: %v", err)
		cancelQueue()
		return nil, err
	}
	components.Api = a

	if cfg.SocketPath != "" {
		server.SetSocketPath(cfg.SocketPath)
	}
	serv := server.NewServer(log, cfg.TCPPort)
	a.RegisterHandlers(serv)

	if cfg.RPC.Secret != "" {
		serv.AttachRPC(server.NewRPCServer(&server.RPCConfig{
			Secret:    cfg.RPC.Secret,
			Port:      cfg.RPC.Port,
			ListenAll: cfg.RPC.ListenAll,
			Version:   currentBuildArgs.Version,
		}, a, log))
	}
	components.Server = serv

	return components, nil
}
