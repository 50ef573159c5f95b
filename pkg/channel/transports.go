package channel

import (
	"context"

	"github.com/dispatchkit/dispatchkit/pkg/email"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/socket"
)

// Transport interfaces are defined here, on the consumer side, so senders
// can be tested with mocks and wired with any implementation that matches.

// PushTransport sends rendered content to one device token.
// Satisfied by *push.Sender.
type PushTransport interface {
	SendToToken(ctx context.Context, token string, content notification.Content, data map[string]string) error
}

// EmailTransport sends one email. Satisfied by email.Sender implementations.
type EmailTransport interface {
	SendEmail(ctx context.Context, params email.SendEmailParams) error
}

// SMSTransport sends one text message. Satisfied by *sms.Sender.
type SMSTransport interface {
	SendSMS(ctx context.Context, phoneNumber, body string) error
}

// SocketTransport emits one real-time event keyed by recipient.
// Satisfied by *socket.Hub[socket.Event].
type SocketTransport interface {
	Emit(ctx context.Context, key string, event socket.Event) error
}
