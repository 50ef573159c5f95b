package channel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/recipient"
)

// PushSender fans one notification out to every active device token of the
// recipient. The channel attempt succeeds when at least one token accepts
// the message: the recipient saw it somewhere, which is what matters.
type PushSender struct {
	directory recipient.Directory
	transport PushTransport
	log       *slog.Logger
}

// PushSenderOption configures a PushSender.
type PushSenderOption func(*PushSender)

// WithPushLogger sets the logger for per-token failures.
func WithPushLogger(log *slog.Logger) PushSenderOption {
	return func(s *PushSender) {
		if log != nil {
			s.log = log
		}
	}
}

// NewPushSender creates the push channel sender.
func NewPushSender(directory recipient.Directory, transport PushTransport, opts ...PushSenderOption) *PushSender {
	s := &PushSender{
		directory: directory,
		transport: transport,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PushSender) Channel() notification.Channel {
	return notification.ChannelPush
}

func (s *PushSender) Send(ctx context.Context, rec *notification.Record, content notification.Content) error {
	tokens, err := s.directory.ActiveTokens(ctx, rec.RecipientID)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if len(tokens) == 0 {
		return ErrNoRecipient
	}

	data := map[string]string{
		"notification_id": rec.ID,
		"event":           rec.TemplateID,
		"type":            string(rec.Type),
	}

	var delivered int
	var failures []error
	for _, tok := range tokens {
		if err := s.transport.SendToToken(ctx, tok.Token, content, data); err != nil {
			failures = append(failures, err)
			s.log.DebugContext(ctx, "push token send failed",
				slog.String("recipient_id", rec.RecipientID),
				slog.String("device_class", string(tok.Class)),
				slog.Any("error", err),
			)
			continue
		}
		delivered++
	}

	if delivered == 0 {
		return errors.Join(ErrSendFailed, errors.Join(failures...))
	}
	return nil
}
