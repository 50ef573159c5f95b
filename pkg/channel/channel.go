package channel

import (
	"context"
	"fmt"
	"sync"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// Sender delivers rendered content for one channel. Implementations resolve
// the recipient's address (tokens, email, phone) themselves; the caller only
// supplies the record and the content rendered for this channel.
type Sender interface {
	// Channel identifies which channel this sender serves.
	Channel() notification.Channel

	// Send performs one delivery attempt. ErrNoRecipient means the
	// recipient has no usable address for this channel and retrying will
	// not help.
	Send(ctx context.Context, rec *notification.Record, content notification.Content) error
}

// Registry holds the senders available to the dispatcher, one per channel.
type Registry struct {
	mu      sync.RWMutex
	senders map[notification.Channel]Sender
}

// NewRegistry creates an empty sender registry.
func NewRegistry() *Registry {
	return &Registry{
		senders: make(map[notification.Channel]Sender),
	}
}

// Register adds a sender for its channel. Registering a channel twice is a
// wiring bug and returns ErrAlreadyRegistered.
func (r *Registry) Register(s Sender) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch := s.Channel()
	if !ch.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}
	if _, exists := r.senders[ch]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, ch)
	}
	r.senders[ch] = s
	return nil
}

// MustRegister registers senders and panics on conflict. Intended for
// wiring at startup.
func (r *Registry) MustRegister(senders ...Sender) *Registry {
	for _, s := range senders {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Sender returns the sender registered for the channel.
func (r *Registry) Sender(ch notification.Channel) (Sender, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.senders[ch]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSenderNotRegistered, ch)
	}
	return s, nil
}

// Channels lists the channels with a registered sender.
func (r *Registry) Channels() []notification.Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channels := make([]notification.Channel, 0, len(r.senders))
	for ch := range r.senders {
		channels = append(channels, ch)
	}
	return channels
}
