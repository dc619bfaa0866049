package remindlib

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/remindl/remindl/pkg/logger"
)

// PermissionState is the process-wide notification authorization state.
// It starts Unknown and transitions to Granted or Denied exactly once,
// after the first authorization request resolves.
type PermissionState int32

const (
	PermissionUnknown PermissionState = iota
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// PermissionGate tracks whether the process may deliver notifications.
// The underlying authorization request is issued at most once per
// process lifetime; later calls return the cached state without
// re-prompting. A Denied result is reported, never raised as an error;
// the scheduling path decides what to do with it.
type PermissionGate struct {
	auth  Authorizer
	log   logger.Logger
	once  sync.Once
	state atomic.Int32
}

// NewPermissionGate returns a gate in the Unknown state.
func NewPermissionGate(auth Authorizer, log logger.Logger) *PermissionGate {
	return &PermissionGate{auth: auth, log: log}
}

// EnsureAuthorized resolves and returns the authorization state,
// issuing the host permission request on the first call only. A
// request failure resolves to Denied.
func (g *PermissionGate) EnsureAuthorized(ctx context.Context) PermissionState {
	g.once.Do(func() {
		granted, err := g.auth.RequestAuthorization(ctx)
		if err != nil {
			g.log.Warning("authorization request failed: %v", err)
			g.state.Store(int32(PermissionDenied))
			return
		}
		if granted {
			g.state.Store(int32(PermissionGranted))
			return
		}
		g.log.Warning("notification permission not granted by host")
		g.state.Store(int32(PermissionDenied))
	})
	return g.State()
}

// State returns the cached authorization state without issuing a
// request.
func (g *PermissionGate) State() PermissionState {
	return PermissionState(g.state.Load())
}
