package status

import (
	"fmt"
	"time"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// Tracker applies status transitions and retry scheduling to notification
// records. It mutates records in memory only; persisting the result is the
// caller's responsibility.
//
// Allowed transitions:
//
//	pending  -> sent | failed
//	failed   -> sent | failed | pending (retry scheduled)
//	sent     -> sent | failed | delivered
//	delivered is terminal
//
// A record is shared across channel attempts, so a later channel's outcome
// may overwrite an earlier channel's failure; the Channel field always
// names the attempt the status belongs to.
type Tracker struct {
	policies map[notification.Channel]RetryPolicy
	now      func() time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithPolicies overrides the default per-channel retry policy table.
func WithPolicies(policies map[notification.Channel]RetryPolicy) TrackerOption {
	return func(t *Tracker) {
		if len(policies) > 0 {
			t.policies = policies
		}
	}
}

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker creates a tracker with the default policy table.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		policies: DefaultPolicies(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Policy returns the retry policy for a channel. Unknown channels get a
// zero policy (no retries).
func (t *Tracker) Policy(ch notification.Channel) RetryPolicy {
	return t.policies[ch]
}

// MarkSent records a successful channel attempt.
func (t *Tracker) MarkSent(rec *notification.Record, ch notification.Channel) error {
	if rec.Status == notification.StatusDelivered {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.Status, notification.StatusSent)
	}

	now := t.now()
	rec.Status = notification.StatusSent
	rec.Channel = ch
	rec.FailureReason = ""
	rec.NextRetryAt = nil
	if rec.SentAt == nil {
		rec.SentAt = &now
	}
	rec.UpdatedAt = now
	return nil
}

// MarkDelivered records transport-confirmed delivery. Only valid after a
// successful send.
func (t *Tracker) MarkDelivered(rec *notification.Record) error {
	if rec.Status != notification.StatusSent {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.Status, notification.StatusDelivered)
	}

	now := t.now()
	rec.Status = notification.StatusDelivered
	rec.DeliveredAt = &now
	rec.UpdatedAt = now
	return nil
}

// MarkFailed records a failed channel attempt. The record's retry budget is
// resolved from the channel's policy unless the caller already pinned an
// override via maxRetriesOverride (< 0 means no override).
func (t *Tracker) MarkFailed(rec *notification.Record, ch notification.Channel, cause error, maxRetriesOverride int) error {
	if rec.Status == notification.StatusDelivered {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, rec.Status, notification.StatusFailed)
	}

	now := t.now()
	rec.Status = notification.StatusFailed
	rec.Channel = ch
	if cause != nil {
		rec.FailureReason = cause.Error()
	}
	if maxRetriesOverride >= 0 {
		rec.MaxRetries = maxRetriesOverride
	} else {
		rec.MaxRetries = t.Policy(ch).MaxRetries
	}
	rec.UpdatedAt = now
	return nil
}

// ScheduleRetry transitions a failed record back to pending with an
// incremented retry count and an exponential-backoff next-attempt time.
// Returns false without mutating the record when the budget is exhausted,
// leaving failed as the terminal state.
func (t *Tracker) ScheduleRetry(rec *notification.Record, ch notification.Channel) (bool, error) {
	if rec.Status != notification.StatusFailed {
		return false, fmt.Errorf("%w: retry from %s", ErrInvalidTransition, rec.Status)
	}
	if rec.RetryCount >= rec.MaxRetries {
		return false, nil
	}

	now := t.now()
	next := now.Add(t.Policy(ch).Delay(rec.RetryCount))
	rec.RetryCount++
	rec.Status = notification.StatusPending
	rec.NextRetryAt = &next
	rec.UpdatedAt = now
	return true, nil
}
