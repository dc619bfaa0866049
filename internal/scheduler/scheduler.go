package scheduler

import (
	"container/heap"
	"context"
	"time"
)

const maxSleepCap = 60 * time.Second

// Scheduler manages pending reminder events using a min-heap. It runs
// a background goroutine that sleeps until the next event's trigger
// time, then calls the onTrigger callback with the event.
type Scheduler struct {
	addChan    chan Event
	removeChan chan string
	ctx        context.Context
}

// New creates and starts a new Scheduler. The onTrigger callback is
// invoked when an event's trigger instant arrives. The scheduler
// goroutine exits when ctx is cancelled.
func New(ctx context.Context, onTrigger func(Event)) *Scheduler {
	s := &Scheduler{
		addChan:    make(chan Event, 64),
		removeChan: make(chan string, 64),
		ctx:        ctx,
	}
	go s.run(onTrigger)
	return s
}

// Add enqueues a new reminder event. Events whose trigger instant is
// already past fire on the next wakeup.
func (s *Scheduler) Add(event Event) {
	select {
	case s.addChan <- event:
	case <-s.ctx.Done():
	}
}

// Remove cancels a pending event by ID.
func (s *Scheduler) Remove(id string) {
	select {
	case s.removeChan <- id:
	case <-s.ctx.Done():
	}
}

// run is the core scheduler goroutine implementing the active-object
// pattern. It maintains a min-heap of events and sleeps with a 60s
// max-sleep-cap. Every event is one-shot: once fired it is gone.
func (s *Scheduler) run(onTrigger func(Event)) {
	h := &eventHeap{}
	heap.Init(h)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	resetTimer := func() <-chan time.Time {
		if timer != nil {
			timer.Stop()
		}
		if h.Len() == 0 {
			// No events — block indefinitely on channels
			return nil
		}
		next := (*h)[0].Request.TriggerAt
		dur := time.Until(next)
		if dur > maxSleepCap {
			dur = maxSleepCap
		}
		if dur < 0 {
			dur = 0
		}
		timer = time.NewTimer(dur)
		return timer.C
	}

	timerCh := resetTimer()

	for {
		select {
		case <-s.ctx.Done():
			return

		case event := <-s.addChan:
			heapPush(h, event)
			timerCh = resetTimer()

		case id := <-s.removeChan:
			heapRemoveByID(h, id)
			timerCh = resetTimer()

		case <-timerCh:
			// Fire all events whose time has arrived
			now := time.Now()
			for h.Len() > 0 && !(*h)[0].Request.TriggerAt.After(now) {
				event := heapPop(h)
				onTrigger(event)
			}
			timerCh = resetTimer()
		}
	}
}
