package api

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/remindl/remindl/internal/notify"
	"github.com/remindl/remindl/internal/scheduler"
	"github.com/remindl/remindl/pkg/logger"
	"github.com/remindl/remindl/pkg/remindlib"
)

// postTimeout bounds a single desktop alert attempt when an event
// fires.
const postTimeout = 10 * time.Second

// alertHeading is the fixed summary line of every desktop alert; the
// user's text goes in the alert body.
const alertHeading = "Reminder"

// QueueDelivery adapts the in-memory event queue to the scheduling
// core's delivery interface. Accepting a request means enqueueing it;
// the alert itself is raised later, when the queue fires the event.
type QueueDelivery struct {
	queue *scheduler.Scheduler

	mu     sync.Mutex
	lastID string
}

// NewQueueDelivery returns a delivery backed by the given event queue.
func NewQueueDelivery(queue *scheduler.Scheduler) *QueueDelivery {
	return &QueueDelivery{queue: queue}
}

// ScheduleOneShot assigns the request a fresh ID and enqueues it.
func (d *QueueDelivery) ScheduleOneShot(ctx context.Context, req remindlib.Request) error {
	id := uuid.NewString()
	d.queue.Add(scheduler.Event{ID: id, Request: req})
	d.mu.Lock()
	d.lastID = id
	d.mu.Unlock()
	return nil
}

// LastID returns the ID assigned by the most recent ScheduleOneShot.
func (d *QueueDelivery) LastID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastID
}

// Cancel removes a pending event from the queue.
func (d *QueueDelivery) Cancel(id string) {
	d.queue.Remove(id)
}

var _ remindlib.Delivery = (*QueueDelivery)(nil)

// TriggerSink returns the queue callback that posts a desktop alert
// for each fired event.
func TriggerSink(svc notify.Service, log logger.Logger) func(scheduler.Event) {
	return func(e scheduler.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), postTimeout)
		defer cancel()
		if err := svc.Post(ctx, alertHeading, e.Request.Body); err != nil {
			log.Error("reminder %s: failed to post alert: %v", e.ID, err)
			return
		}
		log.Info("reminder %s fired: %s", e.ID, e.Request.Title)
	}
}
