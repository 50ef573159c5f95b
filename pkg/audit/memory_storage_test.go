package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dispatchkit/dispatchkit/pkg/audit"
	"github.com/dispatchkit/dispatchkit/pkg/notification"
)

func seedEntries(t *testing.T, storage *audit.MemoryStorage) {
	t.Helper()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	entries := []audit.Entry{
		{ID: "1", NotificationID: "ntf-1", RecipientID: "user-1", Channel: notification.ChannelPush, Event: audit.EventFailed, CreatedAt: base},
		{ID: "2", NotificationID: "ntf-1", RecipientID: "user-1", Channel: notification.ChannelPush, Event: audit.EventRetried, CreatedAt: base.Add(time.Minute)},
		{ID: "3", NotificationID: "ntf-1", RecipientID: "user-1", Channel: notification.ChannelPush, Event: audit.EventSent, CreatedAt: base.Add(2 * time.Minute)},
		{ID: "4", NotificationID: "ntf-2", RecipientID: "user-2", Channel: notification.ChannelEmail, Event: audit.EventSent, CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, storage.Store(context.Background(), e))
	}
}

func TestMemoryStorage_Query(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("filters by notification id", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		seedEntries(t, storage)

		entries, err := storage.Query(ctx, audit.Criteria{NotificationID: "ntf-1"})
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("filters by channel and event", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		seedEntries(t, storage)

		entries, err := storage.Query(ctx, audit.Criteria{
			Channel: notification.ChannelPush,
			Event:   audit.EventSent,
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "3", entries[0].ID)
	})

	t.Run("filters by time range", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		seedEntries(t, storage)

		base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
		entries, err := storage.Query(ctx, audit.Criteria{
			From: base.Add(time.Minute),
			To:   base.Add(2 * time.Minute),
		})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("applies offset and limit", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		seedEntries(t, storage)

		entries, err := storage.Query(ctx, audit.Criteria{NotificationID: "ntf-1", Offset: 1, Limit: 1})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "2", entries[0].ID)
	})

	t.Run("offset past end returns empty", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		seedEntries(t, storage)

		entries, err := storage.Query(ctx, audit.Criteria{Offset: 100})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("rejects invalid entries", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		err := storage.Store(ctx, audit.Entry{ID: "x"})
		assert.ErrorIs(t, err, audit.ErrEntryValidation)
	})
}

func TestReader(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("trail returns full history in order", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		seedEntries(t, storage)

		reader := audit.NewReader(storage)
		trail, err := reader.Trail(ctx, "ntf-1")
		require.NoError(t, err)
		require.Len(t, trail, 3)
		assert.Equal(t, audit.EventFailed, trail[0].Event)
		assert.Equal(t, audit.EventRetried, trail[1].Event)
		assert.Equal(t, audit.EventSent, trail[2].Event)
	})

	t.Run("count uses storage counter", func(t *testing.T) {
		t.Parallel()

		storage := audit.NewMemoryStorage()
		seedEntries(t, storage)

		reader := audit.NewReader(storage)
		n, err := reader.Count(ctx, audit.Criteria{RecipientID: "user-1"})
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
	})
}
