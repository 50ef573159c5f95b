package channel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/socket"
)

// SocketSender serves the real-time channel. Delivery is best-effort: a
// recipient with no connected client is not an error, since the in-app
// record remains the durable copy they will see on next load.
type SocketSender struct {
	transport SocketTransport
	log       *slog.Logger
	now       func() time.Time
}

// SocketSenderOption configures a SocketSender.
type SocketSenderOption func(*SocketSender)

// WithSocketLogger sets the logger used for delivery diagnostics.
func WithSocketLogger(log *slog.Logger) SocketSenderOption {
	return func(s *SocketSender) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSocketClock overrides the time source, for deterministic tests.
func WithSocketClock(now func() time.Time) SocketSenderOption {
	return func(s *SocketSender) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSocketSender creates the socket channel sender.
func NewSocketSender(transport SocketTransport, opts ...SocketSenderOption) *SocketSender {
	s := &SocketSender{
		transport: transport,
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SocketSender) Channel() notification.Channel {
	return notification.ChannelSocket
}

func (s *SocketSender) Send(ctx context.Context, rec *notification.Record, content notification.Content) error {
	event := socket.Event{
		NotificationID: rec.ID,
		RecipientID:    rec.RecipientID,
		Type:           rec.Type,
		Content:        content,
		Metadata:       rec.Metadata,
		EmittedAt:      s.now(),
	}

	err := s.transport.Emit(ctx, rec.RecipientID, event)
	if errors.Is(err, socket.ErrNoSubscribers) {
		s.log.DebugContext(ctx, "no socket subscribers for recipient",
			slog.String("recipient_id", rec.RecipientID),
			slog.String("notification_id", rec.ID),
		)
		return nil
	}
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
