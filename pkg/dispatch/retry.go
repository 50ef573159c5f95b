package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
	"github.com/dispatchkit/dispatchkit/pkg/channel"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// sweepLockKey is shared by every instance so only one sweep runs at a time.
const sweepLockKey = "dispatch:retry_sweep"

// RetryDue re-attempts every notification whose scheduled retry time has
// passed, using the content stored on the record, and returns how many were
// processed. The caller drives the cadence, typically from a ticker or cron.
//
// Only the last-attempted channel is retried; the other channels had their
// chance during the original dispatch.
func (s *Service) RetryDue(ctx context.Context) (int, error) {
	if s.locker != nil {
		release, ok, err := s.locker.Acquire(ctx, sweepLockKey)
		if err != nil {
			return 0, err
		}
		if !ok {
			// Another instance is sweeping.
			return 0, nil
		}
		defer func() {
			if err := release(ctx); err != nil {
				s.log.WarnContext(ctx, "sweep lock release failed", slog.Any("error", err))
			}
		}()
	}

	due, err := s.records.ListDue(ctx, s.now(), s.sweepBatch)
	if err != nil {
		return 0, errors.Join(ErrPersistence, err)
	}

	processed := 0
	for i := range due {
		rec := &due[i]
		if err := s.retryOne(ctx, rec); err != nil {
			return processed, err
		}
		processed++
	}
	return processed, nil
}

// retryOne re-attempts one due record on its last-attempted channel and
// writes exactly one audit entry for the attempt.
func (s *Service) retryOne(ctx context.Context, rec *notification.Record) error {
	ch := rec.Channel
	content := notification.Content{
		Title:    rec.Title,
		Body:     rec.Message,
		DeepLink: rec.DeepLink,
	}

	sendErr := s.send(ctx, rec, ch, content)
	if sendErr == nil {
		if err := s.tracker.MarkSent(rec, ch); err != nil {
			sendErr = err
		}
	}

	if sendErr == nil {
		s.log.InfoContext(ctx, "notification retry succeeded",
			slog.String("notification_id", rec.ID),
			slog.String("channel", string(ch)),
			slog.Int("retry_count", rec.RetryCount),
		)
		s.appendAudit(ctx, rec.ID, audit.EventSent,
			audit.WithRecipient(rec.RecipientID),
			audit.WithChannel(ch),
			audit.WithStatus(rec.Status),
			audit.WithMetadata("retry_count", rec.RetryCount),
		)
		return s.persist(ctx, rec)
	}

	if err := s.tracker.MarkFailed(rec, ch, sendErr, rec.MaxRetries); err != nil {
		return err
	}

	scheduled := false
	if !errors.Is(sendErr, channel.ErrNoRecipient) && !errors.Is(sendErr, channel.ErrSenderNotRegistered) {
		var err error
		scheduled, err = s.tracker.ScheduleRetry(rec, ch)
		if err != nil {
			return err
		}
	}
	if !scheduled {
		// Terminal failure: clear the stale schedule so the sweep stops
		// picking this record up.
		rec.NextRetryAt = nil
	}

	event := audit.EventFailed
	if scheduled {
		event = audit.EventRetried
	}
	s.log.WarnContext(ctx, "notification retry failed",
		slog.String("notification_id", rec.ID),
		slog.String("channel", string(ch)),
		slog.Int("retry_count", rec.RetryCount),
		slog.Bool("retry_scheduled", scheduled),
		slog.Any("error", sendErr),
	)
	s.appendAudit(ctx, rec.ID, event,
		audit.WithRecipient(rec.RecipientID),
		audit.WithChannel(ch),
		audit.WithStatus(rec.Status),
		audit.WithDetails(sendErr.Error()),
	)
	return s.persist(ctx, rec)
}
