package recipient

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Contact holds the static addresses known for a recipient.
type Contact struct {
	Email string
	Phone string
}

// MemoryDirectory is an in-memory Directory and TokenStore implementation.
// Suitable for development and testing.
type MemoryDirectory struct {
	contacts map[string]Contact
	tokens   map[string][]DeviceToken // recipientID -> tokens
	mu       sync.RWMutex
}

// NewMemoryDirectory creates a new in-memory recipient directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		contacts: make(map[string]Contact),
		tokens:   make(map[string][]DeviceToken),
	}
}

// SetContact registers or replaces a recipient's contact addresses.
func (d *MemoryDirectory) SetContact(recipientID string, c Contact) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.contacts[recipientID] = c
}

func (d *MemoryDirectory) EmailAddress(ctx context.Context, recipientID string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, exists := d.contacts[recipientID]
	if !exists || c.Email == "" {
		return "", fmt.Errorf("%w: no email for %s", ErrNotFound, recipientID)
	}
	return c.Email, nil
}

func (d *MemoryDirectory) PhoneNumber(ctx context.Context, recipientID string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, exists := d.contacts[recipientID]
	if !exists || c.Phone == "" {
		return "", fmt.Errorf("%w: no phone for %s", ErrNotFound, recipientID)
	}
	return c.Phone, nil
}

func (d *MemoryDirectory) ActiveTokens(ctx context.Context, recipientID string) ([]DeviceToken, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var active []DeviceToken
	for _, t := range d.tokens[recipientID] {
		if t.Active {
			active = append(active, t)
		}
	}
	return active, nil
}

func (d *MemoryDirectory) Save(ctx context.Context, token DeviceToken) error {
	if token.RecipientID == "" || token.Token == "" {
		return fmt.Errorf("%w: recipient ID and token are required", ErrInvalidToken)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	tokens := d.tokens[token.RecipientID]
	for i, t := range tokens {
		if t.Token == token.Token {
			tokens[i] = token
			return nil
		}
	}
	d.tokens[token.RecipientID] = append(tokens, token)
	return nil
}

func (d *MemoryDirectory) Deactivate(ctx context.Context, recipientID, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, t := range d.tokens[recipientID] {
		if t.Token == token {
			d.tokens[recipientID][i].Active = false
			return nil
		}
	}
	return ErrTokenNotFound
}

func (d *MemoryDirectory) Touch(ctx context.Context, recipientID, token string, at time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, t := range d.tokens[recipientID] {
		if t.Token == token {
			d.tokens[recipientID][i].LastUsedAt = at
			return nil
		}
	}
	return ErrTokenNotFound
}
