package audit

import (
	"context"
	"time"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// Storage persists audit entries. Implementations must treat the log as
// append-only: Store never updates an existing entry.
type Storage interface {
	Store(ctx context.Context, entry Entry) error
	Query(ctx context.Context, criteria Criteria) ([]Entry, error)
}

// StorageCounter is an optional extension for storages that can count
// matching entries without loading them.
type StorageCounter interface {
	Count(ctx context.Context, criteria Criteria) (int64, error)
}

// Criteria filters audit queries. Zero-value fields are ignored.
type Criteria struct {
	NotificationID string
	RecipientID    string
	Channel        notification.Channel
	Event          EventType
	From           time.Time
	To             time.Time
	Limit          int
	Offset         int
}
