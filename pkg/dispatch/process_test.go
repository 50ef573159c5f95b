package dispatch_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
	"github.com/dispatchkit/dispatchkit/pkg/channel"
	"github.com/dispatchkit/dispatchkit/pkg/dispatch"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
	"github.com/dispatchkit/dispatchkit/pkg/status"
	"github.com/dispatchkit/dispatchkit/pkg/template"
)

// fakeSender is a controllable channel sender. Err may be swapped between
// calls to simulate transient failures.
type fakeSender struct {
	mu    sync.Mutex
	ch    notification.Channel
	err   error
	calls int
}

func (f *fakeSender) Channel() notification.Channel { return f.ch }

func (f *fakeSender) Send(ctx context.Context, rec *notification.Record, content notification.Content) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeSender) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// failingStorage wraps a Storage and fails selected operations.
type failingStorage struct {
	notification.Storage
	createErr error
}

func (f *failingStorage) Create(ctx context.Context, rec notification.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	return f.Storage.Create(ctx, rec)
}

type fixture struct {
	svc        *dispatch.Service
	records    *notification.MemoryStorage
	auditStore *audit.MemoryStorage
	senders    map[notification.Channel]*fakeSender
}

// newFixture wires a service with in-memory storage, fake senders for all
// channels, and a mutable clock starting at a fixed instant.
func newFixture(t *testing.T, opts ...dispatch.Option) (*fixture, *time.Time) {
	t.Helper()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return current }

	records := notification.NewMemoryStorage()
	auditStore := audit.NewMemoryStorage()

	senders := make(map[notification.Channel]*fakeSender)
	registry := channel.NewRegistry()
	for _, ch := range []notification.Channel{
		notification.ChannelPush,
		notification.ChannelInApp,
		notification.ChannelSocket,
		notification.ChannelEmail,
		notification.ChannelSMS,
	} {
		s := &fakeSender{ch: ch}
		senders[ch] = s
		require.NoError(t, registry.Register(s))
	}

	base := []dispatch.Option{
		dispatch.WithAuditLogger(audit.NewLogger(auditStore, audit.WithLoggerClock(clock))),
		dispatch.WithTracker(status.NewTracker(status.WithClock(clock))),
		dispatch.WithClock(clock),
	}
	svc := dispatch.New(records, template.DefaultRegistry(), registry, append(base, opts...)...)

	return &fixture{
		svc:        svc,
		records:    records,
		auditStore: auditStore,
		senders:    senders,
	}, &current
}

func orderPlacedPayload() notification.Payload {
	return notification.Payload{
		RecipientID: "user-1",
		Event:       "ORDER_PLACED",
		Type:        notification.TypeTransactional,
		Variables: map[string]any{
			"order_id":      "42",
			"customer_name": "Ada",
			"order_total":   "$10.00",
		},
	}
}

func TestService_Process(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("all channels succeed", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		rec, err := f.svc.Process(ctx, orderPlacedPayload())
		require.NoError(t, err)
		require.NotNil(t, rec)

		// Transactional fans out to push, in-app, email.
		assert.Equal(t, 1, f.senders[notification.ChannelPush].callCount())
		assert.Equal(t, 1, f.senders[notification.ChannelInApp].callCount())
		assert.Equal(t, 1, f.senders[notification.ChannelEmail].callCount())
		assert.Equal(t, 0, f.senders[notification.ChannelSMS].callCount())

		assert.Equal(t, notification.StatusSent, rec.Status)
		assert.Equal(t, notification.ChannelEmail, rec.Channel)
		assert.Equal(t, "Order Confirmed", rec.Title)
		assert.Equal(t, "Your order #42 has been placed. Total: $10.00.", rec.Message)
		assert.Equal(t, "app://orders/42", rec.DeepLink)
		assert.NotNil(t, rec.SentAt)
		assert.Equal(t, 0, rec.RetryCount)

		stored, err := f.records.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, notification.StatusSent, stored.Status)

		// One audit entry per channel attempt.
		trail, err := f.auditStore.Query(ctx, audit.Criteria{NotificationID: rec.ID})
		require.NoError(t, err)
		require.Len(t, trail, 3)
		for _, e := range trail {
			assert.Equal(t, audit.EventSent, e.Event)
			assert.Equal(t, "user-1", e.RecipientID)
		}
	})

	t.Run("unknown template creates no record", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		payload := orderPlacedPayload()
		payload.Event = "NO_SUCH_EVENT"

		rec, err := f.svc.Process(ctx, payload)
		assert.ErrorIs(t, err, template.ErrTemplateNotFound)
		assert.Nil(t, rec)

		n, err := f.records.CountUnread(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, n)

		trail, err := f.auditStore.Query(ctx, audit.Criteria{})
		require.NoError(t, err)
		assert.Empty(t, trail)
	})

	t.Run("one channel failing does not block the rest", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		f.senders[notification.ChannelPush].setErr(errors.New("fcm unavailable"))

		payload := orderPlacedPayload()
		payload.Channels = []notification.Channel{notification.ChannelPush, notification.ChannelEmail}

		rec, err := f.svc.Process(ctx, payload)
		require.NoError(t, err)

		assert.Equal(t, 1, f.senders[notification.ChannelPush].callCount())
		assert.Equal(t, 1, f.senders[notification.ChannelEmail].callCount())

		// The later success overwrites the push failure on the shared record.
		assert.Equal(t, notification.StatusSent, rec.Status)
		assert.Equal(t, notification.ChannelEmail, rec.Channel)

		trail, err := f.auditStore.Query(ctx, audit.Criteria{NotificationID: rec.ID})
		require.NoError(t, err)
		require.Len(t, trail, 2)
		assert.Equal(t, audit.EventFailed, trail[0].Event)
		assert.Equal(t, notification.ChannelPush, trail[0].Channel)
		assert.Equal(t, "fcm unavailable", trail[0].Details)
		assert.Equal(t, audit.EventSent, trail[1].Event)
		assert.Equal(t, notification.ChannelEmail, trail[1].Channel)
	})

	t.Run("failure schedules retry with initial delay", func(t *testing.T) {
		t.Parallel()

		f, now := newFixture(t)
		f.senders[notification.ChannelPush].setErr(errors.New("fcm unavailable"))

		payload := orderPlacedPayload()
		payload.Channels = []notification.Channel{notification.ChannelPush}

		rec, err := f.svc.Process(ctx, payload)
		require.NoError(t, err)

		assert.Equal(t, notification.StatusPending, rec.Status)
		assert.Equal(t, 1, rec.RetryCount)
		assert.Equal(t, 2, rec.MaxRetries)
		require.NotNil(t, rec.NextRetryAt)
		assert.Equal(t, now.Add(5*time.Second), *rec.NextRetryAt)
		assert.Equal(t, "fcm unavailable", rec.FailureReason)
	})

	t.Run("no recipient is terminal for the channel", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		f.senders[notification.ChannelSMS].setErr(channel.ErrNoRecipient)

		payload := orderPlacedPayload()
		payload.Channels = []notification.Channel{notification.ChannelSMS}

		rec, err := f.svc.Process(ctx, payload)
		require.NoError(t, err)

		assert.Equal(t, notification.StatusFailed, rec.Status)
		assert.Nil(t, rec.NextRetryAt)
		assert.Zero(t, rec.RetryCount)

		trail, err := f.auditStore.Query(ctx, audit.Criteria{NotificationID: rec.ID})
		require.NoError(t, err)
		require.Len(t, trail, 1)
		assert.Equal(t, audit.EventFailed, trail[0].Event)
		assert.Equal(t, false, trail[0].Metadata["retry_scheduled"])
	})

	t.Run("terminal failure clears an earlier channel's retry schedule", func(t *testing.T) {
		t.Parallel()

		f, now := newFixture(t)
		f.senders[notification.ChannelPush].setErr(errors.New("fcm unavailable"))
		f.senders[notification.ChannelEmail].setErr(channel.ErrNoRecipient)

		payload := orderPlacedPayload()
		payload.Channels = []notification.Channel{notification.ChannelPush, notification.ChannelEmail}

		rec, err := f.svc.Process(ctx, payload)
		require.NoError(t, err)

		// Push scheduled a retry, but the email failure is terminal and owns
		// the record's final state; the stale schedule must not survive it.
		assert.Equal(t, notification.StatusFailed, rec.Status)
		assert.Equal(t, notification.ChannelEmail, rec.Channel)
		assert.Nil(t, rec.NextRetryAt)

		// The sweep has nothing to pick up.
		*now = now.Add(time.Minute)
		n, err := f.svc.RetryDue(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, 1, f.senders[notification.ChannelEmail].callCount())
	})

	t.Run("payload retry override pins the budget", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		f.senders[notification.ChannelPush].setErr(errors.New("fcm unavailable"))

		payload := orderPlacedPayload()
		payload.Channels = []notification.Channel{notification.ChannelPush}
		payload.MaxRetries = map[notification.Channel]int{notification.ChannelPush: 0}

		rec, err := f.svc.Process(ctx, payload)
		require.NoError(t, err)

		// Zero budget: the failure is terminal, no retry scheduled.
		assert.Equal(t, notification.StatusFailed, rec.Status)
		assert.Zero(t, rec.MaxRetries)
		assert.Nil(t, rec.NextRetryAt)
	})

	t.Run("invalid payload rejected before any work", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		_, err := f.svc.Process(ctx, notification.Payload{Event: "ORDER_PLACED"})
		assert.ErrorIs(t, err, notification.ErrInvalidPayload)
	})

	t.Run("create failure surfaces as persistence error", func(t *testing.T) {
		t.Parallel()

		registry := channel.NewRegistry().MustRegister(&fakeSender{ch: notification.ChannelInApp})
		svc := dispatch.New(
			&failingStorage{Storage: notification.NewMemoryStorage(), createErr: errors.New("mongo down")},
			template.DefaultRegistry(),
			registry,
		)

		_, err := svc.Process(ctx, orderPlacedPayload())
		assert.ErrorIs(t, err, dispatch.ErrPersistence)
	})
}

func TestService_MarkReadAndDelivered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("mark read is idempotent", func(t *testing.T) {
		t.Parallel()

		f, now := newFixture(t)
		rec, err := f.svc.Process(ctx, orderPlacedPayload())
		require.NoError(t, err)

		first, err := f.svc.MarkRead(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, first.ReadAt)
		assert.Equal(t, *now, *first.ReadAt)

		*now = now.Add(time.Minute)
		second, err := f.svc.MarkRead(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, *first.ReadAt, *second.ReadAt)

		reads, err := f.auditStore.Query(ctx, audit.Criteria{NotificationID: rec.ID, Event: audit.EventRead})
		require.NoError(t, err)
		assert.Len(t, reads, 1)
	})

	t.Run("mark delivered requires sent status", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		rec, err := f.svc.Process(ctx, orderPlacedPayload())
		require.NoError(t, err)

		delivered, err := f.svc.MarkDelivered(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, notification.StatusDelivered, delivered.Status)
		assert.NotNil(t, delivered.DeliveredAt)

		// Delivered is terminal.
		_, err = f.svc.MarkDelivered(ctx, rec.ID)
		assert.ErrorIs(t, err, status.ErrInvalidTransition)
	})

	t.Run("unread list and count", func(t *testing.T) {
		t.Parallel()

		f, _ := newFixture(t)
		rec, err := f.svc.Process(ctx, orderPlacedPayload())
		require.NoError(t, err)

		n, err := f.svc.UnreadCount(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		list, err := f.svc.Unread(ctx, "user-1", 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, rec.ID, list[0].ID)

		_, err = f.svc.MarkRead(ctx, rec.ID)
		require.NoError(t, err)

		n, err = f.svc.UnreadCount(ctx, "user-1")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
