package api

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/remindl/remindl/common"
	"github.com/remindl/remindl/internal/scheduler"
	"github.com/remindl/remindl/pkg/logger"
	"github.com/remindl/remindl/pkg/remindlib"
)

// postRecorder is a notify.Service stand-in that records posted
// alerts.
type postRecorder struct {
	mu     sync.Mutex
	alerts []postedAlert
	err    error
}

type postedAlert struct {
	title, body string
}

func (p *postRecorder) RequestAuthorization(_ context.Context) (bool, error) {
	return true, nil
}

func (p *postRecorder) Post(_ context.Context, title, body string) error {
	if p.err != nil {
		return p.err
	}
	p.mu.Lock()
	p.alerts = append(p.alerts, postedAlert{title: title, body: body})
	p.mu.Unlock()
	return nil
}

func (p *postRecorder) posted() []postedAlert {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]postedAlert(nil), p.alerts...)
}

func newTestApi(t *testing.T, granted bool, onStop func()) (*Api, *scheduler.Scheduler) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	queue := scheduler.New(ctx, func(scheduler.Event) {})
	log := logger.NewNopLogger()
	gate := remindlib.NewPermissionGate(&remindlib.MockAuthorizer{Granted: granted}, log)
	gate.EnsureAuthorized(ctx)

	a, err := NewApi(log, gate, NewQueueDelivery(queue), "test", onStop)
	if err != nil {
		t.Fatalf("NewApi() err = %v", err)
	}
	return a, queue
}

func TestScheduleReminder_AssignsUniqueIds(t *testing.T) {
	a, _ := newTestApi(t, true, nil)

	at := time.Now().Add(time.Hour)
	_, id1, err := a.ScheduleReminder(context.Background(), "water plants", at)
	if err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	_, id2, err := a.ScheduleReminder(context.Background(), "call dentist", at)
	if err != nil {
		t.Fatalf("second schedule: %v", err)
	}
	if id1 == "" || id2 == "" {
		t.Fatal("expected non-empty reminder IDs")
	}
	if id1 == id2 {
		t.Fatalf("expected distinct IDs, both were %s", id1)
	}
}

func TestScheduleReminder_DeniedPermission(t *testing.T) {
	a, _ := newTestApi(t, false, nil)

	_, _, err := a.ScheduleReminder(context.Background(), "water plants", time.Now().Add(time.Hour))
	if !errors.Is(err, remindlib.ErrNotAuthorized) {
		t.Fatalf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestRemindHandler(t *testing.T) {
	a, _ := newTestApi(t, true, nil)

	body, _ := json.Marshal(common.RemindParams{
		Title:     "  water plants  ",
		TriggerAt: time.Now().Add(time.Hour),
	})
	utype, res, err := a.remindHandler(nil, body)
	if err != nil {
		t.Fatalf("remindHandler() err = %v", err)
	}
	if utype != common.UPDATE_REMIND {
		t.Errorf("update type = %s", utype)
	}
	resp, ok := res.(*common.RemindResponse)
	if !ok {
		t.Fatalf("response type = %T", res)
	}
	if resp.Title != "water plants" {
		t.Errorf("Title = %q, want trimmed title", resp.Title)
	}
	if resp.ReminderId == "" {
		t.Error("expected a reminder ID")
	}
}

func TestRemindHandler_MissingTriggerTime(t *testing.T) {
	a, _ := newTestApi(t, true, nil)

	body, _ := json.Marshal(common.RemindParams{Title: "water plants"})
	_, _, err := a.remindHandler(nil, body)
	if err == nil {
		t.Fatal("expected error for zero trigger_at")
	}
}

func TestRemindHandler_EmptyTitle(t *testing.T) {
	a, _ := newTestApi(t, true, nil)

	body, _ := json.Marshal(common.RemindParams{
		Title:     "   ",
		TriggerAt: time.Now().Add(time.Hour),
	})
	_, _, err := a.remindHandler(nil, body)
	if !errors.Is(err, remindlib.ErrEmptyTitle) {
		t.Fatalf("err = %v, want ErrEmptyTitle", err)
	}
}

func TestPermissionHandler(t *testing.T) {
	a, _ := newTestApi(t, true, nil)

	utype, res, err := a.permissionHandler(nil, nil)
	if err != nil {
		t.Fatalf("permissionHandler() err = %v", err)
	}
	if utype != common.UPDATE_PERMISSION {
		t.Errorf("update type = %s", utype)
	}
	resp := res.(*common.PermissionResponse)
	if resp.State != "granted" {
		t.Errorf("State = %q, want granted", resp.State)
	}
}

func TestVersionHandler(t *testing.T) {
	a, _ := newTestApi(t, true, nil)

	_, res, err := a.versionHandler(nil, nil)
	if err != nil {
		t.Fatalf("versionHandler() err = %v", err)
	}
	if v := res.(*common.VersionResponse).Version; v != "test" {
		t.Errorf("Version = %q", v)
	}
}

func TestStopHandler(t *testing.T) {
	stopped := make(chan struct{})
	a, _ := newTestApi(t, true, func() { close(stopped) })

	_, res, err := a.stopHandler(nil, nil)
	if err != nil {
		t.Fatalf("stopHandler() err = %v", err)
	}
	if !res.(*common.StopResponse).Stopped {
		t.Error("Stopped = false")
	}
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("onStop was not invoked")
	}
}

func TestStopHandler_Unsupported(t *testing.T) {
	a, _ := newTestApi(t, true, nil)

	_, _, err := a.stopHandler(nil, nil)
	if err == nil {
		t.Fatal("expected error when onStop is nil")
	}
}

func TestTriggerSink_PostsAlert(t *testing.T) {
	rec := &postRecorder{}
	sink := TriggerSink(rec, logger.NewNopLogger())

	sink(scheduler.Event{
		ID:      "r1",
		Request: remindlib.NewRequest("water plants", time.Now()),
	})

	got := rec.posted()
	if len(got) != 1 {
		t.Fatalf("posted = %v", got)
	}
	// The alert summary is always the fixed heading; the user's text
	// is the body.
	if got[0].title != "Reminder" {
		t.Errorf("alert heading = %q, want %q", got[0].title, "Reminder")
	}
	if got[0].body != "water plants" {
		t.Errorf("alert body = %q, want the reminder text", got[0].body)
	}
}

func TestQueueDelivery_FiresThroughQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan scheduler.Event, 1)
	queue := scheduler.New(ctx, func(e scheduler.Event) { fired <- e })
	d := NewQueueDelivery(queue)

	req := remindlib.NewRequest("water plants", time.Now().Add(50*time.Millisecond))
	if err := d.ScheduleOneShot(ctx, req); err != nil {
		t.Fatalf("ScheduleOneShot() err = %v", err)
	}

	select {
	case e := <-fired:
		if e.ID != d.LastID() {
			t.Errorf("fired ID = %s, want %s", e.ID, d.LastID())
		}
		if e.Request.Title != "water plants" {
			t.Errorf("fired title = %q", e.Request.Title)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never fired")
	}
}
