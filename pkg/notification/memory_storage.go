package notification

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryStorage is an in-memory implementation of the Storage interface.
// Suitable for development and testing.
type MemoryStorage struct {
	records map[string]Record
	mu      sync.RWMutex
}

// NewMemoryStorage creates a new in-memory record storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[string]Record),
	}
}

func (s *MemoryStorage) Create(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: record ID is required", ErrInvalidRecord)
	}
	if rec.RecipientID == "" {
		return fmt.Errorf("%w: recipient ID is required", ErrInvalidRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRecord, rec.ID)
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.records[rec.ID] = rec
	return nil
}

func (s *MemoryStorage) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[id]
	if !exists {
		return nil, ErrRecordNotFound
	}
	// Copy to prevent external mutation of stored data.
	out := rec
	return &out, nil
}

func (s *MemoryStorage) Update(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[rec.ID]; !exists {
		return ErrRecordNotFound
	}
	s.records[rec.ID] = rec
	return nil
}

func (s *MemoryStorage) ListDue(ctx context.Context, now time.Time, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var due []Record
	for _, rec := range s.records {
		if rec.Status != StatusPending && rec.Status != StatusFailed {
			continue
		}
		if rec.NextRetryAt == nil || rec.NextRetryAt.After(now) {
			continue
		}
		if rec.RetryCount > rec.MaxRetries {
			continue
		}
		due = append(due, rec)
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].NextRetryAt.Before(*due[j].NextRetryAt)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (s *MemoryStorage) ListUnread(ctx context.Context, recipientID string, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var unread []Record
	for _, rec := range s.records {
		if rec.RecipientID != recipientID || rec.IsRead() {
			continue
		}
		unread = append(unread, rec)
	}

	sort.Slice(unread, func(i, j int) bool {
		return unread[i].CreatedAt.After(unread[j].CreatedAt)
	})

	if limit > 0 && len(unread) > limit {
		unread = unread[:limit]
	}
	return unread, nil
}

func (s *MemoryStorage) CountUnread(ctx context.Context, recipientID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records {
		if rec.RecipientID == recipientID && !rec.IsRead() {
			count++
		}
	}
	return count, nil
}
