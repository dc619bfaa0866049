package remindlib

import (
	"context"
	"fmt"

	"github.com/remindl/remindl/pkg/logger"
)

// Scheduler orchestrates one scheduling attempt: validate the draft
// title, confirm the permission gate, build the schedule request and
// submit it to the delivery backend. It is stateless between attempts
// except for reading the gate's cached state; a failed attempt is
// reported once and must be re-triggered by the user.
type Scheduler struct {
	gate     *PermissionGate
	delivery Delivery
	log      logger.Logger
}

// NewScheduler wires a scheduler to its permission gate and delivery
// backend.
func NewScheduler(gate *PermissionGate, delivery Delivery, log logger.Logger) *Scheduler {
	return &Scheduler{gate: gate, delivery: delivery, log: log}
}

// Schedule runs one scheduling attempt for the draft.
//
// Failure modes, all terminal and non-fatal:
//   - ErrEmptyTitle: the trimmed title is empty; the delivery backend
//     is never contacted.
//   - ErrNotAuthorized: permission is Denied or still Unknown; the
//     delivery backend is never contacted.
//   - *DeliveryError: the backend rejected or could not accept the
//     request; the cause is wrapped verbatim.
func (s *Scheduler) Schedule(ctx context.Context, draft Draft) (*Confirmation, error) {
	s.log.Info("schedule attempt: validating")
	title, err := ValidateTitle(draft.Title)
	if err != nil {
		return nil, err
	}

	s.log.Info("schedule attempt: checking permission")
	if state := s.gate.State(); state != PermissionGranted {
		return nil, fmt.Errorf("%w (state: %s)", ErrNotAuthorized, state)
	}

	s.log.Info("schedule attempt: submitting %q for %s", title, draft.TriggerAt)
	req := NewRequest(title, draft.TriggerAt)
	if err := s.delivery.ScheduleOneShot(ctx, req); err != nil {
		return nil, &DeliveryError{Cause: err}
	}

	s.log.Info("schedule attempt: confirmed")
	return &Confirmation{Title: title, TriggerAt: draft.TriggerAt}, nil
}
