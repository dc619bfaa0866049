package server

import (
	"encoding/json"

	"github.com/remindl/remindl/common"
)

// HandlerFunc defines the signature for request handlers. It receives
// the synchronized connection and the raw JSON message body, and
// returns the update type for the response, the response payload, and
// any error encountered.
type HandlerFunc func(
	conn *SyncConn,
	body json.RawMessage,
) (
	common.UpdateType,
	any,
	error,
)
