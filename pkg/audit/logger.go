package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Logger records notification lifecycle events.
type Logger interface {
	// Append records an event for a notification. Exactly one entry is
	// written per call.
	Append(ctx context.Context, notificationID string, event EventType, opts ...EntryOption) error
}

type logger struct {
	storage Storage
	now     func() time.Time
}

// LoggerOption configures a logger.
type LoggerOption func(*logger)

// WithLoggerClock overrides the time source, for deterministic tests.
func WithLoggerClock(now func() time.Time) LoggerOption {
	return func(l *logger) {
		if now != nil {
			l.now = now
		}
	}
}

// NewLogger creates a new audit logger.
func NewLogger(storage Storage, opts ...LoggerOption) Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	l := &logger{
		storage: storage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *logger) Append(ctx context.Context, notificationID string, event EventType, opts ...EntryOption) error {
	entry := Entry{
		ID:             uuid.New().String(),
		NotificationID: notificationID,
		Event:          event,
		CreatedAt:      l.now(),
	}

	for _, opt := range opts {
		opt(&entry)
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	return l.storage.Store(ctx, entry)
}
