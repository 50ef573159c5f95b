package notification

import (
	"context"
	"time"
)

// Storage handles notification record persistence and retrieval.
type Storage interface {
	// Create stores a new record.
	Create(ctx context.Context, rec Record) error

	// Get retrieves a single record by ID.
	Get(ctx context.Context, id string) (*Record, error)

	// Update replaces the stored record with the given snapshot.
	Update(ctx context.Context, rec Record) error

	// ListDue returns records eligible for a retry attempt: a retry is
	// scheduled (NextRetryAt <= now), the record is not terminal, and the
	// retry budget is not exhausted. Results are ordered oldest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]Record, error)

	// ListUnread returns unread records for a recipient, newest first.
	ListUnread(ctx context.Context, recipientID string, limit int) ([]Record, error)

	// CountUnread returns the unread record count for a recipient.
	CountUnread(ctx context.Context, recipientID string) (int, error)
}
