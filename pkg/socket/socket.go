package socket

import (
	"context"
	"sync"
	"time"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// Event is the payload pushed to connected clients for real-time
// notifications.
type Event struct {
	NotificationID string               `json:"notification_id"`
	RecipientID    string               `json:"recipient_id"`
	Type           notification.Type    `json:"type"`
	Content        notification.Content `json:"content"`
	Metadata       map[string]any       `json:"metadata,omitempty"`
	EmittedAt      time.Time            `json:"emitted_at"`
}

// Subscriber receives events emitted for one key.
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel events arrive on. The channel is closed
	// when the subscription ends.
	Receive(ctx context.Context) <-chan T

	// Close ends the subscription. Idempotent.
	Close() error
}

type subscriber[T any] struct {
	ch     chan T
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan T, bufferSize),
	}
}

func (s *subscriber[T]) Receive(ctx context.Context) <-chan T {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers without blocking. A full buffer means the consumer is too
// slow to keep up and the event is dropped for them.
func (s *subscriber[T]) send(msg T) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
