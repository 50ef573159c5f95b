package notification

import "fmt"

// Payload is the caller-supplied request to dispatch one notification.
// It is ephemeral: the dispatcher turns it into a persisted Record.
type Payload struct {
	RecipientID string          `json:"recipient_id"`
	Event       string          `json:"event"`
	Type        Type            `json:"type"`
	Priority    Priority        `json:"priority"`
	TemplateID  string          `json:"template_id,omitempty"` // Overrides Event for template lookup
	Variables   map[string]any  `json:"variables,omitempty"`   // Template variables
	Channels    []Channel       `json:"channels,omitempty"`    // Overrides the type's default channel order
	Metadata    map[string]any  `json:"metadata,omitempty"`
	MaxRetries  map[Channel]int `json:"max_retries,omitempty"` // Per-channel retry overrides
}

// TemplateKey returns the key used for template lookup.
func (p Payload) TemplateKey() string {
	if p.TemplateID != "" {
		return p.TemplateID
	}
	return p.Event
}

// Validate checks the payload for the fields dispatch cannot proceed without.
func (p Payload) Validate() error {
	if p.RecipientID == "" {
		return fmt.Errorf("%w: recipient id is required", ErrInvalidPayload)
	}
	if p.Event == "" && p.TemplateID == "" {
		return fmt.Errorf("%w: event or template id is required", ErrInvalidPayload)
	}
	if p.Type != "" && !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidPayload, p.Type)
	}
	for _, ch := range p.Channels {
		if !ch.Valid() {
			return fmt.Errorf("%w: unknown channel %q", ErrInvalidPayload, ch)
		}
	}
	return nil
}
