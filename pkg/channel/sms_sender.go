package channel

import (
	"context"
	"errors"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/recipient"
)

// SMSSender serves the SMS channel. Only the body is sent; SMS has no
// title, and deep links are left to the push and in-app copies.
type SMSSender struct {
	directory recipient.Directory
	transport SMSTransport
}

// NewSMSSender creates the SMS channel sender.
func NewSMSSender(directory recipient.Directory, transport SMSTransport) *SMSSender {
	return &SMSSender{directory: directory, transport: transport}
}

func (s *SMSSender) Channel() notification.Channel {
	return notification.ChannelSMS
}

func (s *SMSSender) Send(ctx context.Context, rec *notification.Record, content notification.Content) error {
	phone, err := s.directory.PhoneNumber(ctx, rec.RecipientID)
	if err != nil {
		if errors.Is(err, recipient.ErrNotFound) {
			return ErrNoRecipient
		}
		return errors.Join(ErrSendFailed, err)
	}
	if phone == "" {
		return ErrNoRecipient
	}

	if err := s.transport.SendSMS(ctx, phone, content.Body); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
