package push

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// fcmClient is the part of *messaging.Client the sender uses.
type fcmClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

// Sender delivers push notifications to individual device tokens through
// Firebase Cloud Messaging.
type Sender struct {
	client fcmClient
	config Config
}

// New creates an FCM-backed push sender from service-account credentials.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("%w: ProjectID is required", ErrInvalidConfig)
	}

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		return nil, fmt.Errorf("%w: credentials JSON or file is required", ErrInvalidConfig)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Join(ErrInitFailed, err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Join(ErrInitFailed, err)
	}

	return &Sender{client: client, config: cfg}, nil
}

// NewFromClient creates a sender around an existing messaging client.
// Intended for tests.
func NewFromClient(client fcmClient, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// SendToToken delivers rendered content to a single device token. The deep
// link travels in the data payload so the mobile client can route the tap.
// Returns ErrTokenUnregistered when FCM reports the token is no longer
// valid, so callers can deactivate it.
func (s *Sender) SendToToken(ctx context.Context, token string, content notification.Content, data map[string]string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrSendFailed)
	}

	payload := make(map[string]string, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	if content.DeepLink != "" {
		payload["deep_link"] = content.DeepLink
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: content.Title,
			Body:  content.Body,
		},
		Data: payload,
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				ChannelID: s.config.AndroidChannelID,
			},
		},
	}

	send := s.client.Send
	if s.config.DryRun {
		send = s.client.SendDryRun
	}

	if _, err := send(ctx, msg); err != nil {
		if messaging.IsUnregistered(err) {
			return errors.Join(ErrTokenUnregistered, err)
		}
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
