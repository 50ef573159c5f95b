package notification

import "time"

// Record is the persisted, mutable representation of one dispatched
// notification. A record is created once per dispatch call and mutated in
// place as channel attempts complete; it is never deleted by this module.
type Record struct {
	ID          string `json:"id" bson:"_id"`
	RecipientID string `json:"recipient_id" bson:"recipient_id"`

	// Rendered primary content stored with the record so it can be
	// re-sent on retry without re-rendering.
	Title    string `json:"title" bson:"title"`
	Message  string `json:"message" bson:"message"`
	DeepLink string `json:"deep_link,omitempty" bson:"deep_link,omitempty"`

	Type     Type     `json:"type" bson:"type"`
	Priority Priority `json:"priority" bson:"priority"`

	// Channel is the last-attempted channel; Status reflects the outcome
	// of that attempt.
	Channel Channel `json:"channel,omitempty" bson:"channel,omitempty"`
	Status  Status  `json:"status" bson:"status"`

	TemplateID string         `json:"template_id" bson:"template_id"`
	Metadata   map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`

	FailureReason string     `json:"failure_reason,omitempty" bson:"failure_reason,omitempty"`
	RetryCount    int        `json:"retry_count" bson:"retry_count"`
	MaxRetries    int        `json:"max_retries" bson:"max_retries"`
	NextRetryAt   *time.Time `json:"next_retry_at,omitempty" bson:"next_retry_at,omitempty"`

	SentAt      *time.Time `json:"sent_at,omitempty" bson:"sent_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" bson:"delivered_at,omitempty"`
	ReadAt      *time.Time `json:"read_at,omitempty" bson:"read_at,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// IsRead reports whether the recipient has read the notification.
func (r *Record) IsRead() bool {
	return r.ReadAt != nil
}

// RetriesExhausted reports whether the record has no retry budget left.
func (r *Record) RetriesExhausted() bool {
	return r.RetryCount >= r.MaxRetries
}

// MarkRead sets the read timestamp. Idempotent: a second call keeps the
// original timestamp.
func (r *Record) MarkRead(at time.Time) {
	if r.ReadAt != nil {
		return
	}
	r.ReadAt = &at
	r.UpdatedAt = at
}
