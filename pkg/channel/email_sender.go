package channel

import (
	"context"
	"errors"

	"github.com/dispatchkit/dispatchkit/pkg/email"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/recipient"
)

// EmailSender serves the email channel. The rendered title becomes the
// subject and the body is sent as the plain-text part.
type EmailSender struct {
	directory recipient.Directory
	transport EmailTransport
}

// NewEmailSender creates the email channel sender.
func NewEmailSender(directory recipient.Directory, transport EmailTransport) *EmailSender {
	return &EmailSender{directory: directory, transport: transport}
}

func (s *EmailSender) Channel() notification.Channel {
	return notification.ChannelEmail
}

func (s *EmailSender) Send(ctx context.Context, rec *notification.Record, content notification.Content) error {
	address, err := s.directory.EmailAddress(ctx, rec.RecipientID)
	if err != nil {
		if errors.Is(err, recipient.ErrNotFound) {
			return ErrNoRecipient
		}
		return errors.Join(ErrSendFailed, err)
	}
	if address == "" {
		return ErrNoRecipient
	}

	err = s.transport.SendEmail(ctx, email.SendEmailParams{
		SendTo:   address,
		Subject:  content.Title,
		BodyText: content.Body,
		Tag:      rec.TemplateID,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
