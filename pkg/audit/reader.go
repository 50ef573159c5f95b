package audit

import "context"

// Reader queries the audit log.
type Reader interface {
	// Find retrieves entries matching the criteria, oldest first.
	Find(ctx context.Context, criteria Criteria) ([]Entry, error)

	// Trail retrieves the full event history for one notification.
	Trail(ctx context.Context, notificationID string) ([]Entry, error)

	// Count returns the number of entries matching the criteria.
	Count(ctx context.Context, criteria Criteria) (int64, error)
}

type reader struct {
	storage Storage
}

// NewReader creates a new audit reader.
func NewReader(storage Storage) Reader {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}
	return &reader{storage: storage}
}

func (r *reader) Find(ctx context.Context, criteria Criteria) ([]Entry, error) {
	return r.storage.Query(ctx, criteria)
}

func (r *reader) Trail(ctx context.Context, notificationID string) ([]Entry, error) {
	return r.storage.Query(ctx, Criteria{NotificationID: notificationID})
}

// Count uses the storage's optimized counter when available and falls back
// to loading matching entries otherwise.
func (r *reader) Count(ctx context.Context, criteria Criteria) (int64, error) {
	if counter, ok := r.storage.(StorageCounter); ok {
		return counter.Count(ctx, criteria)
	}

	entries, err := r.storage.Query(ctx, criteria)
	if err != nil {
		return 0, err
	}
	return int64(len(entries)), nil
}
