package remindcli

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/remindl/remindl/common"
)

// serveOnce answers a single request on the daemon side of a pipe with
// the given response.
func serveOnce(t *testing.T, conn net.Conn, wantMethod common.UpdateType, resp *Response) {
	t.Helper()
	go func() {
		buf, err := read(conn)
		if err != nil {
			t.Errorf("daemon read: %v", err)
			return
		}
		var req Request
		if err := json.Unmarshal(buf, &req); err != nil {
			t.Errorf("daemon unmarshal: %v", err)
			return
		}
		if req.Method != wantMethod {
			t.Errorf("method = %s, want %s", req.Method, wantMethod)
		}
		out, _ := json.Marshal(resp)
		if err := write(conn, out); err != nil {
			t.Errorf("daemon write: %v", err)
		}
	}()
}

func okUpdate(t *testing.T, utype common.UpdateType, message any) *Response {
	t.Helper()
	raw, err := json.Marshal(message)
	if err != nil {
		t.Fatal(err)
	}
	return &Response{
		Ok:     true,
		Update: &Update{Type: utype, Message: raw},
	}
}

func TestRemind(t *testing.T) {
	cliConn, daemonConn := net.Pipe()
	defer cliConn.Close()
	defer daemonConn.Close()

	at := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC)
	serveOnce(t, daemonConn, common.UPDATE_REMIND, okUpdate(t, common.UPDATE_REMIND, &common.RemindResponse{
		ReminderId: "r1",
		Title:      "water plants",
		TriggerAt:  at,
	}))

	c := NewClientForTesting(cliConn)
	resp, err := c.Remind("water plants", at)
	if err != nil {
		t.Fatalf("Remind() err = %v", err)
	}
	if resp.ReminderId != "r1" {
		t.Errorf("ReminderId = %q", resp.ReminderId)
	}
	if !resp.TriggerAt.Equal(at) {
		t.Errorf("TriggerAt = %s, want %s", resp.TriggerAt, at)
	}
}

func TestRemind_DaemonError(t *testing.T) {
	cliConn, daemonConn := net.Pipe()
	defer cliConn.Close()
	defer daemonConn.Close()

	serveOnce(t, daemonConn, common.UPDATE_REMIND, &Response{
		Ok:    false,
		Error: "reminder title must not be empty",
	})

	c := NewClientForTesting(cliConn)
	_, err := c.Remind("", time.Now().Add(time.Hour))
	if err == nil {
		t.Fatal("expected error from daemon")
	}
	if err.Error() != "reminder title must not be empty" {
		t.Errorf("err = %q", err)
	}
}

func TestPermission(t *testing.T) {
	cliConn, daemonConn := net.Pipe()
	defer cliConn.Close()
	defer daemonConn.Close()

	serveOnce(t, daemonConn, common.UPDATE_PERMISSION, okUpdate(t, common.UPDATE_PERMISSION, &common.PermissionResponse{
		State: "granted",
	}))

	c := NewClientForTesting(cliConn)
	resp, err := c.Permission()
	if err != nil {
		t.Fatalf("Permission() err = %v", err)
	}
	if resp.State != "granted" {
		t.Errorf("State = %q", resp.State)
	}
}

func TestGetDaemonVersion(t *testing.T) {
	cliConn, daemonConn := net.Pipe()
	defer cliConn.Close()
	defer daemonConn.Close()

	serveOnce(t, daemonConn, common.UPDATE_VERSION, okUpdate(t, common.UPDATE_VERSION, &common.VersionResponse{
		Version: "1.2.3",
	}))

	c := NewClientForTesting(cliConn)
	resp, err := c.GetDaemonVersion()
	if err != nil {
		t.Fatalf("GetDaemonVersion() err = %v", err)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("Version = %q", resp.Version)
	}
}

func TestStopDaemon(t *testing.T) {
	cliConn, daemonConn := net.Pipe()
	defer cliConn.Close()
	defer daemonConn.Close()

	serveOnce(t, daemonConn, common.UPDATE_STOP, okUpdate(t, common.UPDATE_STOP, &common.StopResponse{
		Stopped: true,
	}))

	c := NewClientForTesting(cliConn)
	resp, err := c.StopDaemon()
	if err != nil {
		t.Fatalf("StopDaemon() err = %v", err)
	}
	if !resp.Stopped {
		t.Error("Stopped = false")
	}
}

func TestInvoke_MissingUpdate(t *testing.T) {
	cliConn, daemonConn := net.Pipe()
	defer cliConn.Close()
	defer daemonConn.Close()

	serveOnce(t, daemonConn, common.UPDATE_VERSION, &Response{Ok: true})

	c := NewClientForTesting(cliConn)
	_, err := c.GetDaemonVersion()
	if err == nil {
		t.Fatal("expected error for response without update")
	}
}
