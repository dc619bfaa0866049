package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"
	"github.com/creachadair/jrpc2/jhttp"

	"github.com/remindl/remindl/pkg/logger"
	"github.com/remindl/remindl/pkg/remindlib"
)

// Custom JSON-RPC error codes for reminder operations.
const (
	codeInvalidTitle   = jrpc2.Code(-32001)
	codeNotAuthorized  = jrpc2.Code(-32002)
	codeDeliveryFailed = jrpc2.Code(-32003)
	codeInvalidParams  = jrpc2.Code(-32602)
)

// Core is the daemon-side reminder surface the RPC methods delegate
// to. internal/api implements it.
type Core interface {
	// ScheduleReminder runs one scheduling attempt and returns the
	// confirmation and the queued reminder's ID.
	ScheduleReminder(ctx context.Context, title string, triggerAt time.Time) (*remindlib.Confirmation, string, error)

	// PermissionState returns the cached authorization state.
	PermissionState() remindlib.PermissionState
}

// RPCConfig holds configuration for the JSON-RPC endpoint.
type RPCConfig struct {
	Secret    string // Auth token (required -- empty means RPC disabled)
	ListenAll bool   // If true, bind to 0.0.0.0 instead of 127.0.0.1
	Port      int
	Version   string // Daemon version
}

// RPCServer manages the JSON-RPC 2.0 bridge and method handlers.
type RPCServer struct {
	bridge  jhttp.Bridge
	methods handler.Map
	secret  string
	addr    string
	version string
	core    Core
	log     logger.Logger
	server  *http.Server
}

// VersionResult is the response for system.getVersion.
type VersionResult struct {
	Version string `json:"version"`
}

// SetParams is the input for reminder.set.
type SetParams struct {
	Title     string    `json:"title"`
	TriggerAt time.Time `json:"triggerAt"`
}

// SetResult is the response for reminder.set.
type SetResult struct {
	ReminderID string    `json:"reminderId"`
	Title      string    `json:"title"`
	TriggerAt  time.Time `json:"triggerAt"`
}

// PermissionResult is the response for permission.get.
type PermissionResult struct {
	State string `json:"state"`
}

// NewRPCServer creates a new RPCServer with method handlers and HTTP
// bridge.
func NewRPCServer(cfg *RPCConfig, core Core, log logger.Logger) *RPCServer {
	host := "127.0.0.1"
	if cfg.ListenAll {
		host = "0.0.0.0"
	}
	rs := &RPCServer{
		secret:  cfg.Secret,
		addr:    fmt.Sprintf("%s:%d", host, cfg.Port),
		version: cfg.Version,
		core:    core,
		log:     log,
	}

	rs.methods = handler.Map{
		"system.getVersion": handler.New(rs.systemGetVersion),
		"reminder.set":      handler.New(rs.reminderSet),
		"permission.get":    handler.New(rs.permissionGet),
	}
	rs.bridge = jhttp.NewBridge(rs.methods, nil)
	return rs
}

func (rs *RPCServer) systemGetVersion(_ context.Context) (*VersionResult, error) {
	return &VersionResult{Version: rs.version}, nil
}

// reminderSet schedules a one-shot reminder.
func (rs *RPCServer) reminderSet(ctx context.Context, p *SetParams) (*SetResult, error) {
	if p.TriggerAt.IsZero() {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "triggerAt is required"}
	}
	conf, id, err := rs.core.ScheduleReminder(ctx, p.Title, p.TriggerAt)
	if err != nil {
		return nil, rpcError(err)
	}
	return &SetResult{
		ReminderID: id,
		Title:      conf.Title,
		TriggerAt:  conf.TriggerAt,
	}, nil
}

// permissionGet reports the cached notification authorization state.
func (rs *RPCServer) permissionGet(_ context.Context) (*PermissionResult, error) {
	return &PermissionResult{State: rs.core.PermissionState().String()}, nil
}

// rpcError maps core scheduling failures onto JSON-RPC error codes.
func rpcError(err error) error {
	switch {
	case errors.Is(err, remindlib.ErrEmptyTitle):
		return &jrpc2.Error{Code: codeInvalidTitle, Message: err.Error()}
	case errors.Is(err, remindlib.ErrNotAuthorized):
		return &jrpc2.Error{Code: codeNotAuthorized, Message: err.Error()}
	default:
		return &jrpc2.Error{Code: codeDeliveryFailed, Message: err.Error()}
	}
}

// Serve runs the HTTP/WebSocket bridge. It returns immediately when no
// secret is configured -- RPC requires explicit opt-in.
func (rs *RPCServer) Serve() error {
	if rs.secret == "" {
		rs.log.Info("rpc bridge disabled (no secret configured)")
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", requireToken(rs.secret, rs.bridge))
	mux.Handle("/ws", requireToken(rs.secret, http.HandlerFunc(rs.handleWS)))

	rs.server = &http.Server{
		Addr:     rs.addr,
		Handler:  mux,
		ErrorLog: logger.ToStdLogger(rs.log),
	}
	rs.log.Info("rpc bridge listening on %s", rs.addr)

	err := rs.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // expected during shutdown
	}
	return err
}

// Close shuts down the HTTP server and the jrpc2 bridge, releasing
// internal goroutines.
func (rs *RPCServer) Close() {
	if rs.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = rs.server.Shutdown(ctx)
	}
	rs.bridge.Close()
}
