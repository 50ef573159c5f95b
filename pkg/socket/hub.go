package socket

import (
	"context"
	"sync"
)

// Hub fans events out to subscribers grouped by key, typically the
// recipient ID. Events are delivered non-blocking: slow consumers get
// events dropped rather than stalling the emitter. All methods are safe
// for concurrent use.
type Hub[T any] struct {
	subs       map[string]map[*subscriber[T]]struct{}
	bufferSize int
	closed     bool
	mu         sync.RWMutex
	cleanupWg  sync.WaitGroup
}

// NewHub creates a hub. bufferSize sets each subscriber's channel buffer;
// a minimum of 1 is enforced so sends stay non-blocking.
func NewHub[T any](bufferSize int) *Hub[T] {
	return &Hub[T]{
		subs:       make(map[string]map[*subscriber[T]]struct{}),
		bufferSize: max(bufferSize, 1),
	}
}

// Subscribe registers a subscriber for events emitted under key. The
// subscription is cleaned up when ctx is cancelled. A closed hub returns an
// already-closed subscriber.
func (h *Hub[T]) Subscribe(ctx context.Context, key string) Subscriber[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub := newSubscriber[T](h.bufferSize)
		_ = sub.Close()
		return sub
	}

	sub := newSubscriber[T](h.bufferSize)
	if h.subs[key] == nil {
		h.subs[key] = make(map[*subscriber[T]]struct{})
	}
	h.subs[key][sub] = struct{}{}

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			<-ctx.Done()
			h.unsubscribe(key, sub)
		}()
	}

	return sub
}

// Emit sends an event to every subscriber of key. Returns ErrNoSubscribers
// when nobody is listening, so callers can decide whether that matters:
// real-time delivery is best-effort and the notification record remains the
// durable copy.
func (h *Hub[T]) Emit(ctx context.Context, key string, event T) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return ErrHubClosed
	}

	group := h.subs[key]
	if len(group) == 0 {
		return ErrNoSubscribers
	}

	for sub := range group {
		if !sub.send(event) {
			// Slow or closed subscribers are removed asynchronously so one
			// stalled client cannot hold up the emit path.
			go h.unsubscribe(key, sub)
		}
	}

	return nil
}

// Listeners reports how many subscribers are registered under key.
func (h *Hub[T]) Listeners(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[key])
}

// Close shuts the hub down and closes every subscriber. Safe to call more
// than once.
func (h *Hub[T]) Close() error {
	h.mu.Lock()

	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true

	for _, group := range h.subs {
		for sub := range group {
			_ = sub.Close()
		}
	}
	clear(h.subs)
	h.mu.Unlock()

	h.cleanupWg.Wait()
	return nil
}

func (h *Hub[T]) unsubscribe(key string, sub *subscriber[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if group, ok := h.subs[key]; ok {
		delete(group, sub)
		if len(group) == 0 {
			delete(h.subs, key)
		}
	}
	_ = sub.Close()
}
