package remindcli

import (
	"encoding/json"
	"time"

	"github.com/remindl/remindl/common"
)

func invoke[T any](c *Client, method common.UpdateType, message any) (*T, error) {
	resp, err := c.invoke(method, message)
	if err != nil {
		return nil, err
	}
	var d T
	return &d, json.Unmarshal(resp, &d)
}

// Remind schedules a one-shot reminder with the given title at the
// given instant. Past instants are accepted and fire immediately.
func (c *Client) Remind(title string, triggerAt time.Time) (*common.RemindResponse, error) {
	return invoke[common.RemindResponse](c, common.UPDATE_REMIND, &common.RemindParams{
		Title:     title,
		TriggerAt: triggerAt,
	})
}

// Permission reports the daemon's cached notification authorization
// state.
func (c *Client) Permission() (*common.PermissionResponse, error) {
	return invoke[common.PermissionResponse](c, common.UPDATE_PERMISSION, nil)
}

// GetDaemonVersion returns the running daemon's version.
func (c *Client) GetDaemonVersion() (*common.VersionResponse, error) {
	return invoke[common.VersionResponse](c, common.UPDATE_VERSION, nil)
}

// StopDaemon asks the daemon to shut down.
func (c *Client) StopDaemon() (*common.StopResponse, error) {
	return invoke[common.StopResponse](c, common.UPDATE_STOP, nil)
}
