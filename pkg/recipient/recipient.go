package recipient

import (
	"context"
	"time"
)

// DeviceClass identifies the class of a push-capable endpoint.
type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceDesktop DeviceClass = "desktop"
	DeviceWeb     DeviceClass = "web"
)

// DeviceToken is an opaque handle to one of a recipient's push endpoints.
// Tokens are deactivated rather than deleted so delivery history stays
// attributable.
type DeviceToken struct {
	RecipientID string      `json:"recipient_id"`
	Class       DeviceClass `json:"class"`
	Token       string      `json:"token"`
	Active      bool        `json:"active"`
	LastUsedAt  time.Time   `json:"last_used_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Directory resolves delivery addresses for a recipient. Senders consume
// this read-only view; a missing or empty address means the channel cannot
// reach the recipient.
type Directory interface {
	// EmailAddress returns the recipient's email address.
	EmailAddress(ctx context.Context, recipientID string) (string, error)

	// PhoneNumber returns the recipient's phone number in E.164 format.
	PhoneNumber(ctx context.Context, recipientID string) (string, error)

	// ActiveTokens returns the recipient's active device tokens.
	ActiveTokens(ctx context.Context, recipientID string) ([]DeviceToken, error)
}

// TokenStore manages device token registration. Deactivation is the only
// mutation path for a failing token; nothing in this module deactivates
// tokens automatically on a failed send.
type TokenStore interface {
	// Save registers or refreshes a device token.
	Save(ctx context.Context, token DeviceToken) error

	// Deactivate marks a token inactive without removing it.
	Deactivate(ctx context.Context, recipientID, token string) error

	// Touch updates the token's last-used timestamp.
	Touch(ctx context.Context, recipientID, token string, at time.Time) error
}
