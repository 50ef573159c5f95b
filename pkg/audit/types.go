package audit

import (
	"fmt"
	"time"

	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

// EventType classifies what happened to a notification.
type EventType string

const (
	EventCreated   EventType = "created"
	EventSent      EventType = "sent"
	EventDelivered EventType = "delivered"
	EventFailed    EventType = "failed"
	EventRetried   EventType = "retried"
	EventRead      EventType = "read"
)

// Entry is a single audit record. The audit log is append-only: entries are
// never edited or deleted, so it preserves the full attempt history that the
// mutable notification record overwrites.
type Entry struct {
	ID             string               `json:"id" bson:"_id"`
	NotificationID string               `json:"notification_id" bson:"notification_id"`
	RecipientID    string               `json:"recipient_id,omitempty" bson:"recipient_id,omitempty"`
	Channel        notification.Channel `json:"channel,omitempty" bson:"channel,omitempty"`
	Event          EventType            `json:"event" bson:"event"`
	Status         notification.Status  `json:"status,omitempty" bson:"status,omitempty"`
	Details        string               `json:"details,omitempty" bson:"details,omitempty"`
	Metadata       map[string]any       `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt      time.Time            `json:"created_at" bson:"created_at"`
}

// Validate checks if the entry has all required fields.
func (e *Entry) Validate() error {
	if e.NotificationID == "" {
		return fmt.Errorf("%w: notification id is required", ErrEntryValidation)
	}
	if e.Event == "" {
		return fmt.Errorf("%w: event is required", ErrEntryValidation)
	}
	return nil
}

// EntryOption applies configuration to an Entry during creation.
// Used with the Append method to attach channel, status, details, etc.
type EntryOption func(*Entry)

// WithRecipient sets the recipient the audited notification addresses.
func WithRecipient(recipientID string) EntryOption {
	return func(e *Entry) { e.RecipientID = recipientID }
}

// WithChannel sets the channel the event belongs to.
func WithChannel(ch notification.Channel) EntryOption {
	return func(e *Entry) { e.Channel = ch }
}

// WithStatus sets the notification status at the time of the event.
func WithStatus(s notification.Status) EntryOption {
	return func(e *Entry) { e.Status = s }
}

// WithDetails attaches free-form diagnostic details, typically the failure
// reason for failed attempts.
func WithDetails(details string) EntryOption {
	return func(e *Entry) { e.Details = details }
}

// WithMetadata adds a metadata key-value pair to the entry.
func WithMetadata(key string, value any) EntryOption {
	return func(e *Entry) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]any)
		}
		e.Metadata[key] = value
	}
}
