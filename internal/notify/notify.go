package notify

import (
	"context"

	"github.com/remindl/remindl/pkg/logger"
	"github.com/remindl/remindl/pkg/remindlib"
)

// DefaultAppName identifies the notifying application to the host.
const DefaultAppName = "remindl"

// Service posts desktop alerts and answers the one-time authorization
// request issued by the permission gate.
type Service interface {
	remindlib.Authorizer

	// Post raises an OS-level alert with the given title and body.
	Post(ctx context.Context, title, body string) error
}

// New returns the notification service for the current platform.
// appName may be empty, in which case DefaultAppName is used.
func New(appName string, log logger.Logger) (Service, error) {
	if appName == "" {
		appName = DefaultAppName
	}
	return newPlatformService(appName, log)
}
