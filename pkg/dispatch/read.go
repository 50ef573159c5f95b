package dispatch

import (
	"context"
	"errors"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// MarkRead sets the read timestamp on a notification. Idempotent: marking
// an already-read notification keeps the original timestamp and writes no
// audit entry.
func (s *Service) MarkRead(ctx context.Context, id string) (*notification.Record, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.IsRead() {
		return rec, nil
	}

	rec.MarkRead(s.now())
	if err := s.persist(ctx, rec); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, rec.ID, audit.EventRead,
		audit.WithRecipient(rec.RecipientID),
		audit.WithStatus(rec.Status),
	)
	return rec, nil
}

// MarkDelivered records a transport-confirmed delivery receipt, e.g. a push
// delivery callback. Only valid for notifications in sent status.
func (s *Service) MarkDelivered(ctx context.Context, id string) (*notification.Record, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.tracker.MarkDelivered(rec); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, rec); err != nil {
		return nil, err
	}

	s.appendAudit(ctx, rec.ID, audit.EventDelivered,
		audit.WithRecipient(rec.RecipientID),
		audit.WithChannel(rec.Channel),
		audit.WithStatus(rec.Status),
	)
	return rec, nil
}

// Unread lists a recipient's unread notifications, newest first.
func (s *Service) Unread(ctx context.Context, recipientID string, limit int) ([]notification.Record, error) {
	records, err := s.records.ListUnread(ctx, recipientID, limit)
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}
	return records, nil
}

// UnreadCount returns how many unread notifications a recipient has,
// typically for a badge counter.
func (s *Service) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	n, err := s.records.CountUnread(ctx, recipientID)
	if err != nil {
		return 0, errors.Join(ErrPersistence, err)
	}
	return n, nil
}
