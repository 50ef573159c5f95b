package audit

import (
	"context"
	"sync"
)

// MemoryStorage is an in-memory append-only Storage implementation for tests
// and development.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStorage creates an empty in-memory audit storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Store(_ context.Context, entry Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *MemoryStorage) Query(_ context.Context, criteria Criteria) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Entry, 0)
	for _, e := range s.entries {
		if matches(e, criteria) {
			matched = append(matched, e)
		}
	}

	if criteria.Offset > 0 {
		if criteria.Offset >= len(matched) {
			return []Entry{}, nil
		}
		matched = matched[criteria.Offset:]
	}
	if criteria.Limit > 0 && len(matched) > criteria.Limit {
		matched = matched[:criteria.Limit]
	}
	return matched, nil
}

func (s *MemoryStorage) Count(_ context.Context, criteria Criteria) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, e := range s.entries {
		if matches(e, criteria) {
			n++
		}
	}
	return n, nil
}

func matches(e Entry, c Criteria) bool {
	if c.NotificationID != "" && e.NotificationID != c.NotificationID {
		return false
	}
	if c.RecipientID != "" && e.RecipientID != c.RecipientID {
		return false
	}
	if c.Channel != "" && e.Channel != c.Channel {
		return false
	}
	if c.Event != "" && e.Event != c.Event {
		return false
	}
	if !c.From.IsZero() && e.CreatedAt.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && e.CreatedAt.After(c.To) {
		return false
	}
	return true
}
