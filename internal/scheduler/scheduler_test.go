package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"
)

// firedRecorder collects fired event IDs behind a mutex.
type firedRecorder struct {
	mu    sync.Mutex
	fired map[string]bool
}

func newFiredRecorder() *firedRecorder {
	return &firedRecorder{fired: make(map[string]bool)}
}

func (r *firedRecorder) onTrigger(e Event) {
	r.mu.Lock()
	r.fired[e.ID] = true
	r.mu.Unlock()
}

func (r *firedRecorder) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fired[id]
}

func (r *firedRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fired)
}

func TestScheduler_AddAndFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	// Schedule an event 100ms from now
	s.Add(event("r1", time.Now().Add(100*time.Millisecond)))

	// Wait enough time for the event to fire
	time.Sleep(300 * time.Millisecond)

	if !rec.has("r1") {
		t.Fatal("expected r1 to fire")
	}
}

func TestScheduler_PastInstantFiresImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	s.Add(event("late", time.Now().Add(-time.Minute)))

	time.Sleep(200 * time.Millisecond)

	if !rec.has("late") {
		t.Fatal("expected past-due event to fire on next wakeup")
	}
}

func TestScheduler_RemoveBeforeFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	// Schedule an event 2s from now (plenty of margin)
	s.Add(event("r2", time.Now().Add(2*time.Second)))

	// Give the goroutine time to process the add
	time.Sleep(100 * time.Millisecond)

	s.Remove("r2")

	// Wait past the trigger time
	time.Sleep(2200 * time.Millisecond)

	if rec.has("r2") {
		t.Fatal("removed event fired anyway")
	}
}

func TestScheduler_ShutdownViaContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	s.Add(event("r3", time.Now().Add(500*time.Millisecond)))
	cancel()

	// After cancellation nothing should fire
	time.Sleep(800 * time.Millisecond)

	if rec.has("r3") {
		t.Fatal("event fired after context cancellation")
	}

	// Add after shutdown must not block
	done := make(chan struct{})
	go func() {
		s.Add(event("r4", time.Now()))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Add blocked after shutdown")
	}
}

func TestScheduler_EmptyDoesNotFire(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	New(ctx, rec.onTrigger)

	time.Sleep(200 * time.Millisecond)

	if rec.count() != 0 {
		t.Fatalf("expected no fired events, got %d", rec.count())
	}
}

func TestScheduler_MultipleEventsFireInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var order []string
	s := New(ctx, func(e Event) {
		mu.Lock()
		order = append(order, e.ID)
		mu.Unlock()
	})

	now := time.Now()
	s.Add(event("second", now.Add(300*time.Millisecond)))
	s.Add(event("first", now.Add(100*time.Millisecond)))

	time.Sleep(600 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 {
		t.Fatalf("expected 2 fired events, got %v", order)
	}
	if order[0] != "first" || order[1] != "second" {
		t.Errorf("fired out of order: %v", order)
	}
}

func TestScheduler_RemoveNonexistent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := newFiredRecorder()
	s := New(ctx, rec.onTrigger)

	// Must not panic or disturb the queue
	s.Remove("ghost")

	s.Add(event("real", time.Now().Add(100*time.Millisecond)))
	time.Sleep(300 * time.Millisecond)

	if !rec.has("real") {
		t.Fatal("expected real event to fire after removing nonexistent ID")
	}
}
